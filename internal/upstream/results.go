package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"cyberedu_admin/internal/model"
)

func (c *Client) GetUserAnswers(ctx context.Context, userID int64) (*Result[[]model.AnswerRecord], error) {
	return doJSON[[]model.AnswerRecord](ctx, c, call{
		op:       "get_user_answers",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/superadmin/user/answers/%d/", userID),
		fallback: "Something went wrong while fetching user answers.",
	}, nil)
}

// UploadCertificate 以 multipart 转发 PDF 证书
func (c *Client) UploadCertificate(ctx context.Context, cert model.Certificate, pdf io.Reader) (*Result[json.RawMessage], error) {
	filename := cert.FileName
	if filename == "" {
		filename = "certificate.pdf"
	}
	body, contentType := multipartBody([]formField{
		{name: "user", value: strconv.FormatInt(cert.UserID, 10)},
		{name: "course", value: strconv.FormatInt(cert.CourseID, 10)},
	}, &formFile{field: "pdf_file", filename: filename, content: pdf})

	var out json.RawMessage
	env, err := c.do(ctx, call{
		op:          "upload_certificate",
		method:      http.MethodPost,
		path:        "/superadmin/certificates/",
		body:        body,
		contentType: contentType,
		fallback:    "Something went wrong while uploading certificate.",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &Result[json.RawMessage]{Message: env.Message, Data: out}, nil
}
