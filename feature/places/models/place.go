package models

import (
	"encoding/json"
	"time"

	"place-manager/core/reconcile"

	"gorm.io/datatypes"
)

// Place represents the 'places' table.
type Place struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Lat       float64        `gorm:"column:lat;not null"`
	Lon       float64        `gorm:"column:lon;not null"`
	Tags      datatypes.JSON `gorm:"column:tags;not null"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;index;autoUpdateTime:false"`
	DeletedAt *time.Time     `gorm:"column:deleted_at"` // nil while live
}

// TableName overrides the table name.
func (Place) TableName() string {
	return "places"
}

// IsDeleted reports whether the place has been soft-deleted.
func (p Place) IsDeleted() bool {
	return p.DeletedAt != nil
}

// ToCached converts the row to the reconcile engine view.
func (p Place) ToCached() reconcile.Cached {
	return reconcile.Cached{ID: p.ID, Tags: []byte(p.Tags), DeletedAt: p.DeletedAt}
}

// PlaceResponse is the JSON representation served by the read API.
type PlaceResponse struct {
	ID        int64           `json:"id" example:"2417553540"`
	Lat       float64         `json:"lat" example:"53.5495"`
	Lon       float64         `json:"lon" example:"9.9633"`
	Tags      json.RawMessage `json:"tags" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

// ToResponse converts the row to its API representation with UTC timestamps.
func (p Place) ToResponse() PlaceResponse {
	tags := json.RawMessage(p.Tags)
	if len(tags) == 0 {
		tags = json.RawMessage("{}")
	}
	resp := PlaceResponse{
		ID:        p.ID,
		Lat:       p.Lat,
		Lon:       p.Lon,
		Tags:      tags,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	if p.DeletedAt != nil {
		at := p.DeletedAt.UTC()
		resp.DeletedAt = &at
	}
	return resp
}
