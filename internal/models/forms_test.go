// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func validBooking() *BookingForm {
	return &BookingForm{
		FirstName:             "Jane",
		LastName:              "Kimani",
		Email:                 "jane@example.com",
		Phone:                 "0700123456",
		Address:               "Riverside Drive, Nairobi",
		ServiceType:           "Antenatal Care & Follow-Up",
		PreferredDate:         "2026-09-10",
		PreferredTime:         "10:00 AM",
		EmergencyContactName:  "John Kimani",
		EmergencyContactPhone: "0700654321",
	}
}

// =====================================================================
// Booking Form
// =====================================================================

func TestBookingValidate(t *testing.T) {
	if msg := validBooking().Validate(); msg != "" {
		t.Fatalf("valid form rejected: %q", msg)
	}

	t.Run("reports first missing field", func(t *testing.T) {
		f := validBooking()
		f.FirstName = "  "
		f.Email = ""
		if msg := f.Validate(); msg != "First name is required." {
			t.Errorf("Validate() = %q, want first-name error first", msg)
		}
	})

	t.Run("weeks pregnant must be numeric", func(t *testing.T) {
		f := validBooking()
		f.WeeksPregnant = "twenty"
		if msg := f.Validate(); !strings.Contains(msg, "number") {
			t.Errorf("Validate() = %q, want numeric error", msg)
		}
	})

	t.Run("optional fields may be blank", func(t *testing.T) {
		f := validBooking()
		f.DueDate = ""
		f.WeeksPregnant = ""
		f.AdditionalNotes = ""
		if msg := f.Validate(); msg != "" {
			t.Errorf("Validate() = %q, want valid", msg)
		}
	})
}

func TestBookingPayload(t *testing.T) {
	f := validBooking()
	f.FirstName = "  Jane  "
	f.DueDate = ""
	f.WeeksPregnant = " 24 "

	p := f.Payload()

	if p.FirstName != "Jane" {
		t.Errorf("FirstName = %q, want trimmed", p.FirstName)
	}
	if p.DueDate != nil {
		t.Errorf("DueDate = %v, want nil for blank input", *p.DueDate)
	}
	if p.WeeksPregnant == nil || *p.WeeksPregnant != 24 {
		t.Errorf("WeeksPregnant = %v, want 24", p.WeeksPregnant)
	}
}

// The backend expects snake_case keys and JSON null for a blank due date.
func TestBookingPayloadWireFormat(t *testing.T) {
	f := validBooking()
	f.DueDate = ""

	b, err := json.Marshal(f.Payload())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)

	for _, key := range []string{`"first_name"`, `"service_type"`, `"preferred_time"`, `"emergency_contact_phone"`} {
		if !strings.Contains(body, key) {
			t.Errorf("payload missing key %s: %s", key, body)
		}
	}
	if !strings.Contains(body, `"due_date":null`) {
		t.Errorf("blank due date should marshal as null: %s", body)
	}
}

// =====================================================================
// Enquiry Forms
// =====================================================================

func TestGeneralEnquiryValidate(t *testing.T) {
	f := &GeneralEnquiryForm{Name: "Jane", Phone: "0700123456", Email: "jane@example.com", Message: "Hello"}
	if msg := f.Validate(); msg != "" {
		t.Fatalf("valid form rejected: %q", msg)
	}

	f.Message = "  "
	if msg := f.Validate(); msg != "Message is required." {
		t.Errorf("Validate() = %q, want message error", msg)
	}
}

func TestContactPayloadNullableDueDate(t *testing.T) {
	f := &ContactForm{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "0700123456",
		Reason:  "General Question",
		Message: "Hello",
	}
	if msg := f.Validate(); msg != "" {
		t.Fatalf("valid form rejected: %q", msg)
	}

	if p := f.Payload(); p.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", *p.DueDate)
	}

	f.DueDate = "2026-12-01"
	if p := f.Payload(); p.DueDate == nil || *p.DueDate != "2026-12-01" {
		t.Errorf("DueDate not carried through: %v", f.Payload().DueDate)
	}
}
