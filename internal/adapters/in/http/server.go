package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/otp"
	"pickup/internal/core/domain/model/parcel"
	"pickup/internal/core/domain/model/report"
	"pickup/internal/generated/servers"
	"pickup/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addParcelHandler         commands.AddParcelCommandHandler
	generateOtpHandler       commands.GeneratePickupOtpCommandHandler
	confirmPickupHandler     commands.ConfirmPickupCommandHandler
	flagProblemHandler       commands.FlagParcelProblemCommandHandler
	resumeParcelHandler      commands.ResumeParcelCommandHandler
	submitReportHandler      commands.SubmitCustomerReportCommandHandler
	linkReportHandler        commands.LinkCustomerReportCommandHandler
	generateQrCheckinHandler commands.GenerateQrCheckinCommandHandler

	// Query handlers
	getParcelDetailsHandler queries.GetParcelDetailsQueryHandler
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler
	getReportFeedHandler    queries.GetReportFeedQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addParcelHandler commands.AddParcelCommandHandler,
	generateOtpHandler commands.GeneratePickupOtpCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	flagProblemHandler commands.FlagParcelProblemCommandHandler,
	resumeParcelHandler commands.ResumeParcelCommandHandler,
	submitReportHandler commands.SubmitCustomerReportCommandHandler,
	linkReportHandler commands.LinkCustomerReportCommandHandler,
	generateQrCheckinHandler commands.GenerateQrCheckinCommandHandler,
	getParcelDetailsHandler queries.GetParcelDetailsQueryHandler,
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	getReportFeedHandler queries.GetReportFeedQueryHandler,
) *Server {
	return &Server{
		addParcelHandler:         addParcelHandler,
		generateOtpHandler:       generateOtpHandler,
		confirmPickupHandler:     confirmPickupHandler,
		flagProblemHandler:       flagProblemHandler,
		resumeParcelHandler:      resumeParcelHandler,
		submitReportHandler:      submitReportHandler,
		linkReportHandler:        linkReportHandler,
		generateQrCheckinHandler: generateQrCheckinHandler,
		getParcelDetailsHandler:  getParcelDetailsHandler,
		getParcelHistoryHandler:  getParcelHistoryHandler,
		getReportFeedHandler:     getReportFeedHandler,
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// CreateParcel handles POST /api/v1/parcels - registers a parcel at the pickup point.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	trackingCode, err := kernel.NewTrackingCode(body.TrackingCode)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	contact, err := kernel.NewContact(body.ContactName, deref(body.ContactPhone), deref(body.ContactMail))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	locationID, err := kernel.UUIDFromString(body.LocationId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	var courierID *kernel.UUID
	if body.CourierId != nil {
		id, courierErr := kernel.UUIDFromString(body.CourierId.String())
		if courierErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+courierErr.Error())
		}
		courierID = &id
	}

	parcelID := kernel.NewUUID()

	cmd, err := commands.NewAddParcelCommand(
		parcelID, trackingCode, locationID, courierID, contact, deref(body.Notes), body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel data: "+err.Error())
	}

	if err = s.addParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, parcel.ErrDuplicateTrackingCode):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to register parcel")
		}
	}

	return ctx.JSON(http.StatusCreated, servers.ParcelCreated{Id: parcelID.Bytes()})
}

// GetParcel handles GET /api/v1/parcels/{parcelId} - retrieves parcel details.
func (s *Server) GetParcel(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	query, err := queries.NewGetParcelDetailsQuery(parcelID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	details, err := s.getParcelDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve parcel")
	}

	response := servers.Parcel{
		Id:              details.ID.Bytes(),
		TrackingCode:    details.TrackingCode,
		Status:          details.Status,
		LocationName:    details.LocationName,
		ContactName:     details.ContactName,
		ContactPhone:    optional(details.ContactPhone),
		ContactMail:     optional(details.ContactEmail),
		CourierName:     optional(details.CourierName),
		Notes:           optional(details.Notes),
		CreatedAt:       details.CreatedAt,
		StatusChangedAt: details.StatusChangedAt,
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcelHistory handles GET /api/v1/parcels/{parcelId}/history - retrieves the event trail.
func (s *Server) GetParcelHistory(ctx echo.Context, parcelId openapi_types.UUID) error {
	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	events, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve history")
	}

	response := make([]servers.HistoryEvent, len(events))
	for i, event := range events {
		response[i] = servers.HistoryEvent{
			Id:         event.ID.Bytes(),
			Type:       event.Type,
			Actor:      event.Actor,
			Payload:    decodePayload(event.Payload),
			OccurredAt: event.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GenerateOtp handles POST /api/v1/parcels/{parcelId}/otp - issues a pickup OTP.
func (s *Server) GenerateOtp(ctx echo.Context, parcelId openapi_types.UUID) error {
	var body servers.GenerateOtpJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	cmd, err := commands.NewGeneratePickupOtpCommand(kernel.NewUUID(), parcelID, body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	generated, err := s.generateOtpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		case errors.Is(err, commands.ErrParcelAlreadyClosed):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to issue pickup code")
		}
	}

	return ctx.JSON(http.StatusCreated, servers.GeneratedOtp{
		OtpId:     generated.OtpID.Bytes(),
		Code:      generated.Code,
		ExpiresAt: generated.ExpiresAt,
	})
}

// ConfirmPickup handles POST /api/v1/parcels/{parcelId}/confirm - confirms a pickup with an OTP code.
func (s *Server) ConfirmPickup(ctx echo.Context, parcelId openapi_types.UUID) error {
	var body servers.ConfirmPickupJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	cmd, err := commands.NewConfirmPickupCommand(parcelID, body.Code, body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		case errors.Is(err, otp.ErrOtpInvalid),
			errors.Is(err, otp.ErrOtpExpired),
			errors.Is(err, otp.ErrOtpAlreadyConsumed):
			return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to confirm pickup")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FlagParcelProblem handles POST /api/v1/parcels/{parcelId}/problem - moves a parcel under handling.
func (s *Server) FlagParcelProblem(ctx echo.Context, parcelId openapi_types.UUID) error {
	var body servers.FlagParcelProblemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	cmd, err := commands.NewFlagParcelProblemCommand(parcelID, body.Reason, body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.flagProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to flag parcel")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeParcel handles POST /api/v1/parcels/{parcelId}/resume - returns a parcel to awaiting pickup.
func (s *Server) ResumeParcel(ctx echo.Context, parcelId openapi_types.UUID) error {
	var body servers.ResumeParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(parcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	cmd, err := commands.NewResumeParcelCommand(parcelID, body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.resumeParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Parcel not found")
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to resume parcel")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReport handles POST /api/v1/reports - submits a customer report.
func (s *Server) CreateReport(ctx echo.Context) error {
	var body servers.CreateReportJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reportID := kernel.NewUUID()

	cmd, err := commands.NewSubmitCustomerReportCommand(
		reportID, body.TrackingCode, body.CustomerName, deref(body.CustomerMail), deref(body.Notes))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid report data: "+err.Error())
	}

	if err = s.submitReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to submit report")
	}

	return ctx.JSON(http.StatusCreated, servers.ReportCreated{Id: reportID.Bytes()})
}

// LinkReport handles POST /api/v1/reports/{reportId}/link - links a report to a parcel.
func (s *Server) LinkReport(ctx echo.Context, reportId openapi_types.UUID) error {
	var body servers.LinkReportJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	reportID, err := kernel.UUIDFromString(reportId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid report ID")
	}

	parcelID, err := kernel.UUIDFromString(body.ParcelId.String())
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid parcel ID")
	}

	resolution, err := report.StatusFromString(string(body.Resolution))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid resolution: "+err.Error())
	}

	cmd, err := commands.NewLinkCustomerReportCommand(reportID, parcelID, resolution, body.Actor)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.linkReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Report or parcel not found")
		case errors.Is(err, report.ErrReportAlreadyLinked):
			return errorResponse(ctx, http.StatusConflict, err.Error())
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to link report")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReportFeed handles GET /api/v1/reports/feed - polls the customer report feed.
func (s *Server) GetReportFeed(ctx echo.Context, params servers.GetReportFeedParams) error {
	var afterSeq int64
	if params.After != nil {
		afterSeq = *params.After
	}

	query, err := queries.NewGetReportFeedQuery(afterSeq)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	reports, err := s.getReportFeedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve report feed")
	}

	response := make([]servers.ReportFeedItem, len(reports))
	for i, item := range reports {
		response[i] = servers.ReportFeedItem{
			Seq:          item.Seq,
			Id:           item.ID.Bytes(),
			TrackingCode: item.TrackingCode,
			CustomerName: item.CustomerName,
			Status:       item.Status,
			Message:      item.Message,
			CreatedAt:    item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GenerateCheckinQr handles POST /api/v1/checkin-qr - generates the check-in QR code.
func (s *Server) GenerateCheckinQr(ctx echo.Context) error {
	cmd := commands.NewGenerateQrCheckinCommand()

	path, err := s.generateQrCheckinHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to generate check-in QR code")
	}

	return ctx.JSON(http.StatusCreated, servers.CheckinQr{Path: path})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func decodePayload(raw []byte) *map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return &payload
}
