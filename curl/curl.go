package curl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"repo-fetch/model"
)

// Command renders req as a shell-executable curl invocation, one
// argument per continuation line. Values are interpolated literally;
// embedded quotes are not escaped, matching curl's own paste-and-run
// conventions.
func Command(req model.Request) (string, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	segments := []string{fmt.Sprintf("curl -X %s", method)}

	multipart := req.Body != nil && req.Body.Kind == model.MultipartBody

	for _, h := range req.Headers {
		// curl computes the multipart boundary header itself
		if multipart && strings.EqualFold(h.Name, "Content-Type") {
			continue
		}
		segments = append(segments, fmt.Sprintf(`-H "%s: %s"`, h.Name, h.Value))
	}

	if req.Body != nil {
		switch req.Body.Kind {
		case model.MultipartBody:
			for _, field := range req.Body.Fields {
				segments = append(segments, fmt.Sprintf(`-F "%s"`, formField(field)))
			}
		case model.JSONBody:
			data, err := json.Marshal(req.Body.JSON)
			if err != nil {
				return "", fmt.Errorf("marshaling request body: %w", err)
			}
			segments = append(segments, fmt.Sprintf("-d '%s'", data))
		}
	}

	segments = append(segments, fmt.Sprintf(`"%s"`, req.URL))

	return strings.Join(segments, " \\\n  "), nil
}

func formField(field model.FormField) string {
	if field.File == nil {
		return fmt.Sprintf("%s=%s", field.Name, field.Value)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s=@%s", field.Name, field.File.Path)
	if field.File.MIMEType != "" {
		fmt.Fprintf(&b, ";type=%s", field.File.MIMEType)
	}
	if field.File.Filename != "" {
		fmt.Fprintf(&b, ";filename=%s", field.File.Filename)
	}
	return b.String()
}
