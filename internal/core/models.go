package core

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// FlexID tolerates backends that serialize ids as either JSON strings or
// numbers. It always normalizes to the string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexID(cast.ToString(v))
	return nil
}

func (f FlexID) String() string { return string(f) }

// ServiceRecord is the read model for a collection service as the backend
// exposes it. The site never mutates these; admin writes go through AdminAPI.
//
// Slug is NOT guaranteed unique, non-empty, or consistently cased — the
// resolver exists because of that. Category may be empty.
type ServiceRecord struct {
	ID          FlexID   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Benefits    []string `json:"benefits"`
	IsActive    bool     `json:"isActive"`
}

// CarouselSlide is a homepage banner entry.
type CarouselSlide struct {
	ID       FlexID `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// QuoteRequest is a submitted quote as the admin back-office lists it.
type QuoteRequest struct {
	ID        FlexID `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	County    string `json:"county"`
	ServiceID FlexID `json:"serviceId"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// QuoteSubmission is the public quote form payload.
type QuoteSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	County    string `json:"county"`
	ServiceID string `json:"serviceId,omitempty"`
	Message   string `json:"message"`
}

// ServiceFields carries the admin service form to the backend.
type ServiceFields struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// CarouselFields carries the admin carousel form to the backend.
type CarouselFields struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Link     string `json:"link,omitempty"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}
