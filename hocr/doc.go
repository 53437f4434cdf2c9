// Package hocr reads Tesseract hOCR output into token pages.
//
// Every element with class ocr_page becomes a model.Page sized from its
// bbox property, and every ocrx_word inside it becomes a token. hOCR boxes
// are in image pixels with the origin at the top-left corner; they are
// flipped and scaled into points so that the result matches PDF pages.
//
// The resolution comes from the page's scan_res property when present,
// otherwise from Config.DPI.
package hocr
