package service

import "context"

// UploadAPI is the file upload resource group. Name may be empty for an
// anonymous upload; the backend then picks one.
type UploadAPI interface {
	UploadImage(ctx context.Context, token, name string, content []byte, contentType string) (url string, err error)
	DeleteImage(ctx context.Context, token, name string) error
}
