package model

// BodyKind tags the shape of a request body.
type BodyKind int

const (
	NoBody BodyKind = iota
	JSONBody
	MultipartBody
)

// Header is a single header pair. Requests carry headers as a slice so
// emission order always matches insertion order.
type Header struct {
	Name  string
	Value string
}

// FileRef points at a local file attached to a multipart field.
// MIMEType and Filename are optional.
type FileRef struct {
	Path     string
	MIMEType string
	Filename string
}

// FormField is one named multipart field: either a plain value or,
// when File is set, a file upload.
type FormField struct {
	Name  string
	Value string
	File  *FileRef
}

// Body is a tagged request body. JSON carries any json-serializable
// value when Kind is JSONBody; Fields carries the ordered form fields
// when Kind is MultipartBody.
type Body struct {
	Kind   BodyKind
	JSON   any
	Fields []FormField
}

// Request describes an HTTP call before execution.
type Request struct {
	Method  string
	Headers []Header
	URL     string
	Body    *Body
}
