package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"health-risk-profiler/internal/common"
	"health-risk-profiler/internal/ocr"
	"health-risk-profiler/internal/pipeline"
)

// requestInput inspects the request and produces router input: a saved image
// upload, a JSON {"text": ...} body, or a plain-text body. The returned
// cleanup removes the temporary upload file and must run on every exit path.
func (s *Server) requestInput(r *http.Request) (pipeline.Input, func(), error) {
	noop := func() {}
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		path, cleanup, err := s.saveUpload(r)
		if err != nil {
			return pipeline.Input{}, noop, err
		}
		return pipeline.Input{ImagePath: path}, cleanup, nil

	case strings.HasPrefix(contentType, "application/json"):
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return pipeline.Input{}, noop, nil // malformed JSON routes to the no-input error
		}
		return pipeline.Input{Text: body.Text}, noop, nil

	case strings.HasPrefix(contentType, "text/plain"):
		b, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.Uploads.MaxSizeBytes))
		if err != nil {
			return pipeline.Input{}, noop, common.WrapError(err, "read text body")
		}
		return pipeline.Input{Text: string(b)}, noop, nil
	}

	return pipeline.Input{}, noop, nil
}

// saveUpload stores the "image" form file under the upload dir. The file
// is owned by the request: callers delete it after the pipeline completes,
// success or failure.
func (s *Server) saveUpload(r *http.Request) (string, func(), error) {
	if err := r.ParseMultipartForm(s.cfg.Uploads.MaxSizeBytes); err != nil {
		return "", nil, common.ValidationError("invalid multipart body")
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		// multipart without an image part falls through to the no-input error
		return "", func() {}, nil
	}
	defer func() { _ = file.Close() }()

	ext := ocr.NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := ocr.AllowedExtensions[ext]; !ok {
		return "", nil, common.ValidationErrorf("invalid file type: %q", ext)
	}
	if header.Size > s.cfg.Uploads.MaxSizeBytes {
		return "", nil, common.ValidationError("file too large")
	}

	tmp, err := os.CreateTemp(s.cfg.Uploads.Dir, "upload-*."+ext)
	if err != nil {
		return "", nil, common.WrapError(err, "create upload file")
	}
	cleanup := func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("server.upload.cleanup_failed", "path", tmp.Name(), "error", rmErr)
		}
	}

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, common.WrapError(err, "write upload file")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, common.WrapError(err, "close upload file")
	}
	return tmp.Name(), cleanup, nil
}
