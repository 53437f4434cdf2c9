// Package ocr turns scanned order images into token pages.
//
// Word recognition uses the Tesseract engine via gosseract and is only
// compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, New returns ErrOCRNotEnabled. The conversion from
// recognized words to pages (Recognize, NewPage) is always available and
// works with any WordRecognizer.
package ocr
