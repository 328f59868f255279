// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"strings"
)

// ServiceTypes is the fixed list of bookable services.
var ServiceTypes = []string{
	"Antenatal Care & Follow-Up",
	"Consultations",
	"Partner Health Support",
	"Postpartum Care & Follow-Up",
	"Preconception Care",
	"Preparation for Labor & Delivery",
	"Teenage Empowerment & Reproductive Education",
}

// TimeSlots is the fixed list of bookable appointment times.
var TimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM",
	"04:00 PM", "05:00 PM",
}

// BookingForm holds the appointment booking fields as entered by the
// visitor. All values are kept as strings so a failed submission can
// re-render the form with every field preserved verbatim.
type BookingForm struct {
	FirstName             string
	LastName              string
	Email                 string
	Phone                 string
	Address               string
	ServiceType           string
	PreferredDate         string
	PreferredTime         string
	DueDate               string
	WeeksPregnant         string
	PreviousPregnancies   string
	MedicalConditions     string
	CurrentMedications    string
	AdditionalNotes       string
	EmergencyContactName  string
	EmergencyContactPhone string
}

// Validate checks required fields and returns the first error found,
// or "" when the form is valid.
func (f *BookingForm) Validate() string {
	required := []struct{ value, label string }{
		{f.FirstName, "First name"},
		{f.LastName, "Last name"},
		{f.Email, "Email"},
		{f.Phone, "Phone"},
		{f.Address, "Address"},
		{f.ServiceType, "Service type"},
		{f.PreferredDate, "Preferred date"},
		{f.PreferredTime, "Preferred time"},
		{f.EmergencyContactName, "Emergency contact name"},
		{f.EmergencyContactPhone, "Emergency contact phone"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.label + " is required."
		}
	}
	if f.WeeksPregnant != "" {
		if _, err := strconv.Atoi(strings.TrimSpace(f.WeeksPregnant)); err != nil {
			return "Weeks pregnant must be a number."
		}
	}
	return ""
}

// Payload maps the form to the backend's snake_case wire shape. Optional
// date fields become null when blank; weeks pregnant is parsed and omitted
// when blank; free-text extras default to empty strings.
func (f *BookingForm) Payload() *BookingPayload {
	p := &BookingPayload{
		FirstName:             strings.TrimSpace(f.FirstName),
		LastName:              strings.TrimSpace(f.LastName),
		Email:                 strings.TrimSpace(f.Email),
		Phone:                 strings.TrimSpace(f.Phone),
		Address:               strings.TrimSpace(f.Address),
		ServiceType:           f.ServiceType,
		PreferredDate:         f.PreferredDate,
		PreferredTime:         f.PreferredTime,
		DueDate:               nullable(f.DueDate),
		PreviousPregnancies:   strings.TrimSpace(f.PreviousPregnancies),
		MedicalConditions:     strings.TrimSpace(f.MedicalConditions),
		CurrentMedications:    strings.TrimSpace(f.CurrentMedications),
		AdditionalNotes:       strings.TrimSpace(f.AdditionalNotes),
		EmergencyContactName:  strings.TrimSpace(f.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(f.EmergencyContactPhone),
	}
	if w := strings.TrimSpace(f.WeeksPregnant); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			p.WeeksPregnant = &n
		}
	}
	return p
}

// BookingPayload is the POST /bookings/ request body.
type BookingPayload struct {
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Address               string  `json:"address"`
	ServiceType           string  `json:"service_type"`
	PreferredDate         string  `json:"preferred_date"`
	PreferredTime         string  `json:"preferred_time"`
	DueDate               *string `json:"due_date"`
	WeeksPregnant         *int    `json:"weeks_pregnant"`
	PreviousPregnancies   string  `json:"previous_pregnancies"`
	MedicalConditions     string  `json:"medical_conditions"`
	CurrentMedications    string  `json:"current_medications"`
	AdditionalNotes       string  `json:"additional_notes"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
}

// GeneralEnquiryForm holds the short "get in touch" form on the homepage.
type GeneralEnquiryForm struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// Validate checks required fields and returns the first error found.
func (f *GeneralEnquiryForm) Validate() string {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return "Name is required."
	case strings.TrimSpace(f.Phone) == "":
		return "Phone is required."
	case strings.TrimSpace(f.Email) == "":
		return "Email is required."
	case strings.TrimSpace(f.Message) == "":
		return "Message is required."
	}
	return ""
}

// Payload maps the form to the POST /general-enquiries/ request body.
func (f *GeneralEnquiryForm) Payload() *GeneralEnquiryPayload {
	return &GeneralEnquiryPayload{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// GeneralEnquiryPayload is the POST /general-enquiries/ request body.
type GeneralEnquiryPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactForm holds the contact-page enquiry fields.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	DueDate string
	Reason  string
	Message string
}

// Validate checks required fields and returns the first error found.
// The due date is optional.
func (f *ContactForm) Validate() string {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return "Name is required."
	case strings.TrimSpace(f.Email) == "":
		return "Email is required."
	case strings.TrimSpace(f.Phone) == "":
		return "Phone is required."
	case strings.TrimSpace(f.Reason) == "":
		return "Reason is required."
	case strings.TrimSpace(f.Message) == "":
		return "Message is required."
	}
	return ""
}

// Payload maps the form to the POST /contact-enquiries/ request body.
// A blank due date becomes null, matching what the backend expects for
// nullable date columns.
func (f *ContactForm) Payload() *ContactEnquiryPayload {
	return &ContactEnquiryPayload{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		DueDate: nullable(f.DueDate),
		Reason:  f.Reason,
		Message: strings.TrimSpace(f.Message),
	}
}

// ContactEnquiryPayload is the POST /contact-enquiries/ request body.
type ContactEnquiryPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	DueDate *string `json:"due_date"`
	Reason  string  `json:"reason"`
	Message string  `json:"message"`
}

// nullable returns nil for blank strings so the field marshals as JSON null.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
