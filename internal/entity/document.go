package entity

// Document is one row of the document registry. Number is the merge key on
// import; the most recently imported row wins for a duplicate key.
type Document struct {
	Number   string `json:"document_number"`
	Revision string `json:"revision"`
}
