package http

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	httpKit "github.com/superj80820/user-profile-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-profile-service/kit/http/transport"
)

const (
	imageFormField     = "profilePic"
	imageMaxUploadSize = 32 << 20
)

var EncodeImageUploadResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

type imageUploadRequest struct {
	fileName    string
	contentType string
	file        multipart.File
}

type imageResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	URL        string `json:"url"`
	UploadDate string `json:"upload_date"`
	UserID     string `json:"user_id"`
}

type imageUploadedResponse struct {
	imageResponse
}

func (imageUploadedResponse) SuccessHTTPCode() int { return http.StatusCreated }

func makeImageResponse(image *domain.ProfileImage) imageResponse {
	return imageResponse{
		ID:         image.ID,
		FileName:   image.FileName,
		URL:        image.URL,
		UploadDate: image.UploadDate,
		UserID:     image.UserID,
	}
}

func DecodeImageUploadRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	if err := r.ParseMultipartForm(imageMaxUploadSize); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, imageFormField).AddErrorMetaData(err)
	}
	return imageUploadRequest{
		fileName:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
		file:        file,
	}, nil
}

func MakeImageUploadEndpoint(svc domain.ProfileImageUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(imageUploadRequest)
		defer req.file.Close()

		image, err := svc.Upload(ctx, httpKit.GetUserID(ctx), req.fileName, req.contentType, req.file)
		if err != nil {
			return nil, err
		}
		return imageUploadedResponse{makeImageResponse(image)}, nil
	}
}
