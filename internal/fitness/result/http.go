// Copyright (c) 2026 Fitfolio. All rights reserved.

package result

import (
	"net/http"
	"time"

	requestutil "github.com/dnminh/fitfolio/internal/platform/request"
	"github.com/dnminh/fitfolio/internal/platform/respond"
	"github.com/dnminh/fitfolio/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the calculation record HTTP endpoints.
//
// Both endpoints sit behind the session middleware; the owning user is
// always resolved from the request context, never from the payload.
type Handler struct {
	resultService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{resultService: service}
}

// # Request & Response Payloads

type saveCalcRequest struct {
	Date       string  `json:"date"`
	Age        int     `json:"age"`
	Weight     float64 `json:"weight"`
	Height     float64 `json:"height"`
	BMI        float64 `json:"bmi"`
	Calories   float64 `json:"calories"`
	BodyWeight float64 `json:"bodyWeight"`
}

type resultResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Date       string    `json:"date"`
	Age        int       `json:"age"`
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	BMI        float64   `json:"bmi"`
	Calories   float64   `json:"calories"`
	BodyWeight float64   `json:"bodyWeight"`
	CreatedAt  time.Time `json:"createdAt"`
}

type getCalcResponse struct {
	Status   string           `json:"Status"`
	UserData []resultResponse `json:"userData"`
}

// toResponse maps an entity to its transport shape (date-only formatting).
func toResponse(record Result) resultResponse {
	return resultResponse{
		ID:         record.ID,
		UserID:     record.UserID,
		Date:       record.Date.Format(time.DateOnly),
		Age:        record.Age,
		Weight:     record.WeightKg,
		Height:     record.HeightCm,
		BMI:        record.BMI,
		Calories:   record.Calories,
		BodyWeight: record.IdealWeightKg,
		CreatedAt:  record.CreatedAt,
	}
}

/*
SaveCalc persists one calculator snapshot for the authenticated user.

POST /save-calc

Request:
  - Body: saveCalcRequest (date, age, weight, height, bmi, calories, bodyWeight)

Response:
  - 200: {Status: "Success"}
  - 400: Validation failure
  - 401: Not authenticated
  - 500: Storage failure
*/
func (handler *Handler) SaveCalc(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input saveCalcRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldDate, input.Date).
		Range(FieldAge, input.Age, 1, 120).
		Positive(FieldWeight, input.Weight).
		Positive(FieldHeight, input.Height).
		Positive(FieldBMI, input.BMI).
		Positive(FieldCalories, input.Calories).
		Positive(FieldBodyWt, input.BodyWeight)

	recordedOn, parseErr := time.Parse(time.DateOnly, input.Date)
	validator.Custom(FieldDate, input.Date != "" && parseErr != nil, "Must be a YYYY-MM-DD date")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err = handler.resultService.Save(request.Context(), userID, SaveInput{
		Date:          recordedOn,
		Age:           input.Age,
		WeightKg:      input.Weight,
		HeightCm:      input.Height,
		BMI:           input.BMI,
		Calories:      input.Calories,
		IdealWeightKg: input.BodyWeight,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

/*
GetCalc returns all saved snapshots of the authenticated user, newest first.

GET /get-calc

Response:
  - 200: {Status: "Success", userData: [...]}
  - 401: Not authenticated
  - 500: Storage failure
*/
func (handler *Handler) GetCalc(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	results, err := handler.resultService.List(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userData := make([]resultResponse, 0, len(results))
	for _, record := range results {
		userData = append(userData, toResponse(record))
	}

	respond.OK(writer, getCalcResponse{
		Status:   respond.StatusSuccess,
		UserData: userData,
	})
}
