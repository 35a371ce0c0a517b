package dto

// OCRResultItem is one recognized region in a synchronous /v1/ocr response.
type OCRResultItem struct {
	Polygon    [4][2]float64 `json:"polygon"`
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"`
}

// OCRResponse is the synchronous recognition response: the full region list,
// with no job/document bookkeeping attached.
type OCRResponse struct {
	Results []OCRResultItem `json:"results"`
}
