package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"telegram-relay-service/internal/domain"
	"telegram-relay-service/internal/usecase"
	"telegram-relay-service/pkg/response"
	"telegram-relay-service/pkg/xerrors"
)

// User-facing strings; the store front-end shows these verbatim.
const (
	msgMissingFields    = "بيانات ناقصة. يرجى إرسال نوع الطلب، اسم المستخدم، ورقم الواتساب."
	msgUnknownType      = "نوع الطلب غير معروف. يجب أن يكون booking أو contact."
	msgMissingConfig    = "خطأ في إعدادات السيرفر. يرجى التحقق من Environment Variables."
	msgSuccess          = "تم إرسال الطلب بنجاح!"
	msgFallback         = "تم استلام طلبك ولكن هناك مشكلة تقنية في الإرسال"
	msgManual           = "يمكنك التواصل معنا مباشرة عبر الواتساب"
	msgInternal         = "حدث خطأ داخلي في السيرفر"
	msgMethodNotAllowed = "يسمح فقط بطلبات POST"
)

type RelayHandler struct {
	uc      *usecase.RelayUsecase
	devMode bool
	logger  *zap.Logger
}

func NewRelayHandler(uc *usecase.RelayUsecase, devMode bool, logger *zap.Logger) *RelayHandler {
	return &RelayHandler{
		uc:      uc,
		devMode: devMode,
		logger:  logger,
	}
}

type debugInfo struct {
	PhoneCleaned  string `json:"phoneCleaned"`
	MessageLength int    `json:"messageLength"`
}

type successResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	MessageID    int64     `json:"messageId"`
	WhatsappLink string    `json:"whatsappLink"`
	Timestamp    string    `json:"timestamp"`
	Debug        debugInfo `json:"debug"`
}

type fallbackResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Error         string `json:"error"`
	Received      bool   `json:"received"`
	Fallback      bool   `json:"fallback"`
	WhatsappLink  string `json:"whatsappLink"`
	ManualMessage string `json:"manualMessage"`
}

type internalErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Stack   string `json:"stack,omitempty"`
}

// HandleSubmit accepts one booking/contact submission and relays it to the
// store's Telegram chat.
func (h *RelayHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Warn("undecodable submission body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	result, err := h.uc.Relay(r.Context(), &sub)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrMissingFields):
			response.Error(w, http.StatusBadRequest, msgMissingFields)
		case errors.Is(err, xerrors.ErrUnknownType):
			response.Error(w, http.StatusBadRequest, msgUnknownType)
		case errors.Is(err, xerrors.ErrMissingConfig):
			h.logger.Error("bot token or chat id not configured")
			response.Error(w, http.StatusInternalServerError, msgMissingConfig)
		default:
			h.logger.Error("relay failed", zap.Error(err))
			resp := internalErrorResponse{
				Message: msgInternal,
				Error:   err.Error(),
			}
			if h.devMode {
				resp.Stack = string(debug.Stack())
			}
			response.JSON(w, http.StatusInternalServerError, resp)
		}
		return
	}

	if !result.Delivered {
		response.JSON(w, http.StatusOK, fallbackResponse{
			Message:       msgFallback,
			Error:         result.ErrorDescription,
			Received:      true,
			Fallback:      true,
			WhatsappLink:  result.WhatsappLink,
			ManualMessage: msgManual,
		})
		return
	}

	response.JSON(w, http.StatusOK, successResponse{
		Success:      true,
		Message:      msgSuccess,
		MessageID:    result.MessageID,
		WhatsappLink: result.WhatsappLink,
		Timestamp:    result.Timestamp.UTC().Format(time.RFC3339),
		Debug: debugInfo{
			PhoneCleaned:  result.Phone,
			MessageLength: result.MessageLength,
		},
	})
}

// MethodNotAllowed answers anything other than POST/OPTIONS on the relay
// endpoint.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
