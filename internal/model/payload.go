package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/grampanchayat/internal/lib/utils"
	"github.com/deppfellow/grampanchayat/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Empty is the payload of routes that take no input.
type Empty struct{}

func (Empty) Validate() error { return nil }

// IDParam binds the ":id" path segment.
type IDParam struct {
	ID uuid.UUID `param:"id" json:"-" validate:"required"`
}

func (p *IDParam) Validate() error {
	return validate.Struct(p)
}

// UploadPayload carries the optional form fields sent with a multipart upload.
// The file part itself is read by the handler.
type UploadPayload struct {
	Category string `form:"category" validate:"omitempty,max=100,excludesall=/"`
}

func (p *UploadPayload) Validate() error {
	return validate.Struct(p)
}

// UploadResult describes a stored file.
type UploadResult struct {
	FilePath string `json:"filePath"`
	ImageURL string `json:"imageUrl,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileType string `json:"fileType,omitempty"`
	FileSize string `json:"fileSize,omitempty"`
}

// FileSize accepts either a preformatted string ("12.35 KB") or a byte count.
type FileSize string

func (s *FileSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FileSize(str)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fileSize must be a string or a byte count")
	}
	*s = FileSize(utils.FormatKB(n))
	return nil
}

// Date accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// ---- auth & users ----

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	return validate.Struct(p)
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

func (p *ChangePasswordPayload) Validate() error {
	return validate.Struct(p)
}

type CreateUserPayload struct {
	Email       string   `json:"email" validate:"required,email,max=255"`
	Password    string   `json:"password" validate:"required,min=6,max=72"`
	Role        Role     `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,oneof=* task1 task2 task3 task4 task5 task6 task7 task8 task9"`
}

func (p *CreateUserPayload) Validate() error {
	return validate.Struct(p)
}

type UpdateUserPayload struct {
	ID          uuid.UUID `param:"id" json:"-" validate:"required"`
	Email       *string   `json:"email" validate:"omitempty,email,max=255"`
	Role        *Role     `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Permissions []string  `json:"permissions" validate:"omitempty,dive,oneof=* task1 task2 task3 task4 task5 task6 task7 task8 task9"`
	IsActive    *bool     `json:"isActive"`
	Password    *string   `json:"password" validate:"omitempty,min=6,max=72"`
}

func (p *UpdateUserPayload) Validate() error {
	return validate.Struct(p)
}

// ---- representatives ----

type RepresentativeInput struct {
	ID       *uuid.UUID `json:"id"`
	Name     string     `json:"name" validate:"required,max=255"`
	Mobile   string     `json:"mobile" validate:"required,max=20"`
	Position string     `json:"position" validate:"required,max=100"`
	Image    *string    `json:"image"`
	Fixed    bool       `json:"fixed"`
}

type SaveRepresentativesPayload struct {
	Representatives []RepresentativeInput `json:"representatives" validate:"required,dive"`
}

// Validate also rejects two new fixed entries for the same position, since
// both would resolve to the same stored row.
func (p *SaveRepresentativesPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	var fieldErrors validation.CustomValidationErrors
	seen := make(map[string]bool)
	for i, r := range p.Representatives {
		if !r.Fixed || r.ID != nil {
			continue
		}
		if seen[r.Position] {
			fieldErrors = append(fieldErrors, validation.CustomValidationError{
				Field:   fmt.Sprintf("representatives[%d].position", i),
				Message: "is already used by another fixed representative",
			})
		}
		seen[r.Position] = true
	}
	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}

// ---- documents ----

type DocumentInput struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description *string         `json:"description"`
	Category    string          `json:"category" validate:"required,max=100"`
	Data        json.RawMessage `json:"data"`
}

type CreateDocumentsPayload struct {
	Documents []DocumentInput `json:"documents" validate:"required,min=1,dive"`
}

func (p *CreateDocumentsPayload) Validate() error {
	return validate.Struct(p)
}

type UpdateDocumentPayload struct {
	ID uuid.UUID `param:"id" json:"-" validate:"required"`
	DocumentInput
}

func (p *UpdateDocumentPayload) Validate() error {
	return validate.Struct(p)
}

type ListDocumentsQuery struct {
	Category string `query:"category" validate:"omitempty,max=100"`
}

func (p *ListDocumentsQuery) Validate() error {
	return validate.Struct(p)
}

type DeleteDocumentsPayload struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

func (p *DeleteDocumentsPayload) Validate() error {
	return validate.Struct(p)
}

type DeletedCount struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ---- certificates ----

type CertificateInput struct {
	ID                     *uuid.UUID `json:"id"`
	CertificateName        string     `json:"certificateName" validate:"required,max=255"`
	CertificateDescription string     `json:"certificateDescription" validate:"required"`
	RequiredDocuments      []string   `json:"requiredDocuments"`
	ApplyOnlineURL         *string    `json:"applyOnlineUrl"`
	IsActive               *bool      `json:"isActive"`
}

type SaveCertificatesPayload struct {
	Certificates []CertificateInput `json:"certificates" validate:"required,dive"`
}

func (p *SaveCertificatesPayload) Validate() error {
	return validate.Struct(p)
}

// ---- images ----

type ListImagesQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=general gallery events infrastructure officials"`
}

func (p *ListImagesQuery) Validate() error {
	return validate.Struct(p)
}

type UploadImagePayload struct {
	Title       string `form:"title" validate:"max=255"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"omitempty,oneof=general gallery events infrastructure officials"`
}

func (p *UploadImagePayload) Validate() error {
	return validate.Struct(p)
}

// ---- hero images ----

type UpdateHeroOrderPayload struct {
	ID    uuid.UUID `param:"id" json:"-" validate:"required"`
	Order int       `json:"order" validate:"min=1,max=3"`
}

func (p *UpdateHeroOrderPayload) Validate() error {
	return validate.Struct(p)
}

// ---- infrastructure ----

type InfrastructureInput struct {
	Subcategory string `json:"subcategory" validate:"required,max=255"`
	Facility    string `json:"facility" validate:"required,max=255"`
	Count       string `json:"count" validate:"required,max=50"`
}

type SaveInfrastructurePayload struct {
	Infrastructure []InfrastructureInput `json:"infrastructure" validate:"required,dive"`
	// Subcategory, when set, replaces that subcategory's rows.
	Subcategory *string `json:"subcategory" validate:"omitempty,max=255"`
}

func (p *SaveInfrastructurePayload) Validate() error {
	return validate.Struct(p)
}

type SubcategoryParam struct {
	Subcategory string `param:"subcategory" validate:"required"`
}

func (p *SubcategoryParam) Validate() error {
	return validate.Struct(p)
}

// ---- historical ----

type HistoricalEventInput struct {
	ID             *uuid.UUID `json:"id"`
	Year           string     `json:"year" validate:"required,max=10"`
	EventName      string     `json:"eventName" validate:"required,max=255"`
	AdditionalInfo *string    `json:"additionalInfo"`
}

type HistoricalPlaceInput struct {
	ID        *uuid.UUID `json:"id"`
	PlaceName string     `json:"placeName" validate:"required,max=255"`
	PlaceInfo *string    `json:"placeInfo"`
	Image     *string    `json:"image"`
}

type HistoricalAwardInput struct {
	ID               *uuid.UUID `json:"id"`
	AwardName        string     `json:"awardName" validate:"required,max=255"`
	AwardDescription *string    `json:"awardDescription"`
	Year             *string    `json:"year" validate:"omitempty,max=10"`
}

type SaveHistoricalPayload struct {
	Events []HistoricalEventInput `json:"events" validate:"dive"`
	Places []HistoricalPlaceInput `json:"places" validate:"dive"`
	Awards []HistoricalAwardInput `json:"awards" validate:"dive"`
}

func (p *SaveHistoricalPayload) Validate() error {
	return validate.Struct(p)
}

// ---- grampanchayat ----

type SaveGrampanchayatPayload struct {
	GrampanchayatName string `json:"grampanchayatName" validate:"required,max=255"`
	TalukaName        string `json:"talukaName" validate:"required,max=255"`
	DistrictName      string `json:"districtName" validate:"required,max=255"`
	Phone             string `json:"phone" validate:"required,max=20"`
	Email             string `json:"email" validate:"omitempty,email,max=255"`
	Address           string `json:"address"`
	Pincode           string `json:"pincode" validate:"omitempty,max=10"`
	Website           string `json:"website" validate:"omitempty,max=255"`
}

func (p *SaveGrampanchayatPayload) Validate() error {
	return validate.Struct(p)
}

// ---- announcements ----

type AnnouncementInput struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	FilePath    *string   `json:"filePath"`
	FileType    *string   `json:"fileType" validate:"omitempty,max=100"`
	FileSize    *FileSize `json:"fileSize"`
	UploadDate  *Date     `json:"uploadDate"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
	IsActive    *bool     `json:"isActive"`
}

type SaveAnnouncementsPayload struct {
	Announcements []AnnouncementInput `json:"announcements" validate:"required,dive"`
}

func (p *SaveAnnouncementsPayload) Validate() error {
	return validate.Struct(p)
}
