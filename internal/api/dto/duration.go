package dto

import (
	"time"

	"github.com/fbo94/veloflott/internal/domain/duration"
	"github.com/fbo94/veloflott/internal/types"
	"github.com/fbo94/veloflott/internal/validator"
)

// CreateDurationRequest defines a new rental time unit.
type CreateDurationRequest struct {
	Code      string `json:"code" validate:"required"`
	Label     string `json:"label" validate:"required"`
	Hours     *int   `json:"hours,omitempty"`
	Days      *int   `json:"days,omitempty"`
	IsCustom  bool   `json:"is_custom"`
	SortOrder int    `json:"sort_order"`
}

func (r *CreateDurationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToDurationDefinition builds the domain model; the model's own Validate
// enforces the hours/days invariants.
func (r *CreateDurationRequest) ToDurationDefinition(base types.BaseModel) *duration.DurationDefinition {
	return &duration.DurationDefinition{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DURATION),
		Code:      r.Code,
		Label:     r.Label,
		Hours:     r.Hours,
		Days:      r.Days,
		IsCustom:  r.IsCustom,
		SortOrder: r.SortOrder,
		BaseModel: base,
	}
}

// DurationResponse mirrors a duration definition.
type DurationResponse struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Label     string       `json:"label"`
	Hours     *int         `json:"hours,omitempty"`
	Days      *int         `json:"days,omitempty"`
	IsCustom  bool         `json:"is_custom"`
	SortOrder int          `json:"sort_order"`
	Status    types.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewDurationResponse(d *duration.DurationDefinition) *DurationResponse {
	return &DurationResponse{
		ID:        d.ID,
		Code:      d.Code,
		Label:     d.Label,
		Hours:     d.Hours,
		Days:      d.Days,
		IsCustom:  d.IsCustom,
		SortOrder: d.SortOrder,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
