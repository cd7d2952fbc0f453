package upstream

import (
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
)

type formField struct {
	name  string
	value string
}

// formFile 以流的方式写入 multipart，避免把整个视频读进内存
type formFile struct {
	field    string
	filename string
	content  io.Reader
}

// multipartBody 返回边写边读的请求体及其 Content-Type
func multipartBody(fields []formField, file *formFile) (io.Reader, string) {
	pr, pw := io.Pipe()
	w := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(w, fields, file))
	}()
	return pr, w.FormDataContentType()
}

func writeMultipart(w *multipart.Writer, fields []formField, file *formFile) error {
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return errors.Wrapf(err, "write field %s", f.name)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.field, file.filename)
		if err != nil {
			return errors.Wrap(err, "create form file")
		}
		if _, err := io.Copy(part, file.content); err != nil {
			return errors.Wrap(err, "copy form file")
		}
	}
	return w.Close()
}
