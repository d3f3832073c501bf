package model

import (
	"encoding/json"
	"time"
)

// Representative is an elected member or official shown on the website.
// Fixed rows (sarpanch, gramsevak, ...) keep their slot by position.
type Representative struct {
	Base
	Name     string  `json:"name" db:"name"`
	Mobile   string  `json:"mobile" db:"mobile"`
	Position string  `json:"position" db:"position"`
	Image    *string `json:"image" db:"image"`
	Fixed    bool    `json:"fixed" db:"fixed"`
	Order    int     `json:"order" db:"order"`
}

// Document is a free-form record with an arbitrary JSON payload.
type Document struct {
	Base
	Title       string          `json:"title" db:"title"`
	Description *string         `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"`
	Data        json.RawMessage `json:"data" db:"data"`
}

// Certificate describes a certificate citizens can apply for.
type Certificate struct {
	Base
	CertificateName        string   `json:"certificateName" db:"certificate_name"`
	CertificateDescription string   `json:"certificateDescription" db:"certificate_description"`
	RequiredDocuments      []string `json:"requiredDocuments" db:"required_documents"`
	ApplyOnlineURL         *string  `json:"applyOnlineUrl" db:"apply_online_url"`
	IsActive               bool     `json:"isActive" db:"is_active"`
	Order                  int      `json:"order" db:"order"`
}

// Image categories accepted by the images table.
const (
	ImageCategoryGeneral        = "general"
	ImageCategoryGallery        = "gallery"
	ImageCategoryEvents         = "events"
	ImageCategoryInfrastructure = "infrastructure"
	ImageCategoryOfficials      = "officials"
)

// Image is a gallery picture stored in object storage.
type Image struct {
	Base
	Title       *string `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	ImagePath   string  `json:"imagePath" db:"image_path"`
	ImageURL    string  `json:"imageUrl" db:"image_url"`
	Category    string  `json:"category" db:"category"`
	IsActive    bool    `json:"isActive" db:"is_active"`
	Order       int     `json:"order" db:"order"`
}

// MaxHeroImages is the number of homepage slider images allowed at once.
const MaxHeroImages = 3

// HeroImage is a homepage slider image.
type HeroImage struct {
	Base
	ImagePath string `json:"imagePath" db:"image_path"`
	ImageURL  string `json:"imageUrl" db:"image_url"`
	Order     int    `json:"order" db:"order"`
	IsActive  bool   `json:"isActive" db:"is_active"`
}

// Infrastructure is one facility line (e.g. "Schools: 3") inside a subcategory.
type Infrastructure struct {
	Base
	Subcategory string `json:"subcategory" db:"subcategory"`
	Facility    string `json:"facility" db:"facility"`
	Count       string `json:"count" db:"count"`
	Order       int    `json:"order" db:"order"`
}

type HistoricalEvent struct {
	Base
	Year           string  `json:"year" db:"year"`
	EventName      string  `json:"eventName" db:"event_name"`
	AdditionalInfo *string `json:"additionalInfo" db:"additional_info"`
}

type HistoricalPlace struct {
	Base
	PlaceName string  `json:"placeName" db:"place_name"`
	PlaceInfo *string `json:"placeInfo" db:"place_info"`
	Image     *string `json:"image" db:"image"`
}

type HistoricalAward struct {
	Base
	AwardName        string  `json:"awardName" db:"award_name"`
	AwardDescription *string `json:"awardDescription" db:"award_description"`
	Year             *string `json:"year" db:"year"`
}

// Historical groups the three history tables as the website shows them.
type Historical struct {
	Events []HistoricalEvent `json:"events"`
	Places []HistoricalPlace `json:"places"`
	Awards []HistoricalAward `json:"awards"`
}

// Grampanchayat is the single row of contact details for the village office.
type Grampanchayat struct {
	Base
	GrampanchayatName string  `json:"grampanchayatName" db:"grampanchayat_name"`
	TalukaName        string  `json:"talukaName" db:"taluka_name"`
	DistrictName      string  `json:"districtName" db:"district_name"`
	Phone             string  `json:"phone" db:"phone"`
	Email             *string `json:"email" db:"email"`
	Address           *string `json:"address" db:"address"`
	Pincode           *string `json:"pincode" db:"pincode"`
	Website           *string `json:"website" db:"website"`
}

// Announcement is a notice, usually with an attached document.
// FilePath holds the public URL returned by the upload endpoint.
type Announcement struct {
	Base
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	FilePath    *string   `json:"filePath" db:"file_path"`
	FileType    *string   `json:"fileType" db:"file_type"`
	FileSize    *string   `json:"fileSize" db:"file_size"`
	UploadDate  time.Time `json:"uploadDate" db:"upload_date"`
	Category    string    `json:"category" db:"category"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	Order       int       `json:"order" db:"order"`
}

// WebsiteData is everything the public website renders, in one payload.
type WebsiteData struct {
	Representatives []Representative `json:"representatives"`
	Certificates    []Certificate    `json:"certificates"`
	Images          []Image          `json:"images"`
	Infrastructure  []Infrastructure `json:"infrastructure"`
	Historical      Historical       `json:"historical"`
	Grampanchayat   *Grampanchayat   `json:"grampanchayat"`
	HeroImages      []HeroImage      `json:"heroImages"`
	Announcements   []Announcement   `json:"announcements"`
}
