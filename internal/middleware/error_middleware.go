package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/disiplintakip/internal/app/models/dto"
	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
	"github.com/oguzk/disiplintakip/internal/pkg/gemini"
)

// HandleAPIError maps service errors onto HTTP responses. Error
// messages carried by CustomError are surfaced to the client; bare
// sentinels get a generic message per class.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Öğrenci bulunamadı")
	case errors.Is(err, apperrors.ErrIncidentNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Olay kaydı bulunamadı")
	case errors.Is(err, apperrors.ErrInvolvementNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Öğrenci bu olayla ilişkili değil")
	case errors.Is(err, apperrors.ErrBoardMemberNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Kurul üyesi bulunamadı")
	case errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrArticleNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, "Yaptırım maddesi bulunamadı")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.ErrorCodeResourceNotFound, message(err, "Kayıt bulunamadı"))

	case errors.Is(err, apperrors.ErrNumberExists):
		respond(c, 409, dto.ErrorCodeResourceAlreadyExists, "Bu okul numarası zaten kayıtlı")
	case errors.Is(err, apperrors.ErrAlreadyInvolved):
		respond(c, 409, dto.ErrorCodeResourceAlreadyExists, "Öğrenci bu olaya zaten eklenmiş")

	case errors.Is(err, apperrors.ErrInvalidRole):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Geçersiz olay rolü")
	case errors.Is(err, apperrors.ErrSelectionMissing):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Olay ve öğrenci seçimi gerekli")
	case errors.Is(err, apperrors.ErrContextMissing):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Belge için olay ve öğrenci seçimi gerekli")
	case errors.Is(err, apperrors.ErrUnknownTemplate):
		respond(c, 400, dto.ErrorCodeResourceInvalid, "Bilinmeyen belge türü")
	case errors.Is(err, apperrors.ErrBoardTooSmall):
		respond(c, 400, dto.ErrorCodeValidationFailed, "Kurul en az 3 üyeden oluşmalıdır")
	case errors.Is(err, apperrors.ErrNoStudentBlocks):
		respond(c, 400, dto.ErrorCodeResourceInvalid, "Dosyada öğrenci kartı bulunamadı. e-Okul çıktısını kontrol ediniz.")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, 400, dto.ErrorCodeValidationFailed, message(err, "Doğrulama hatası"))
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.ErrorCodeResourceInvalid, message(err, "Geçersiz istek"))

	case errors.Is(err, gemini.ErrAPIKeyMissing):
		respond(c, 422, dto.ErrorCodeExternalServiceError, err.Error())

	default:
		respond(c, 500, dto.ErrorCodeInternalServer, "Sunucu hatası")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, msg string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, msg)))
}

// message prefers the wrapped user-facing text over the fallback.
func message(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
