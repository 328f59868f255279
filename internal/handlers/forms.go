// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

// userMessage maps a submission error to text safe to show a visitor. The
// backend's own message is already phrased for end users; anything else
// gets a generic line instead of transport internals.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again in a moment."
}

// Form outcome flow: a successful submission queues a flash notification
// and redirects with 303 See Other, so a refresh cannot resubmit and the
// form comes back empty. A failed submission re-renders the same page with
// every field preserved and an inline error notification.

// BookingPage renders the booking form. A ?service= parameter preselects
// the service type, used by the links on the services page.
func (h *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	form := &models.BookingForm{ServiceType: r.URL.Query().Get("service")}
	h.renderBooking(w, r, form, nil)
}

// SubmitBooking validates and forwards the booking to the backend.
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	form := parseBookingForm(r)

	if msg := form.Validate(); msg != "" {
		h.renderBooking(w, r, form, &flash.Message{Type: "error", Message: msg})
		return
	}

	resp, err := h.api.SubmitBooking(r.Context(), form.Payload())
	if err != nil {
		slog.Warn("booking submission failed", "error", err)
		h.renderBooking(w, r, form, &flash.Message{Type: "error", Message: userMessage(err)})
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = "Thank you! Your booking request has been received. We will contact you shortly to confirm."
	}
	h.flash.Success(r.Context(), w, msg)
	http.Redirect(w, r, "/booking", http.StatusSeeOther)
}

// ContactPage renders the contact form.
func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, &models.ContactForm{}, nil)
}

// SubmitContact validates and forwards the contact enquiry to the backend.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	form := &models.ContactForm{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		DueDate: r.FormValue("due_date"),
		Reason:  r.FormValue("reason"),
		Message: r.FormValue("message"),
	}

	if msg := form.Validate(); msg != "" {
		h.renderContact(w, r, form, &flash.Message{Type: "error", Message: msg})
		return
	}

	resp, err := h.api.SubmitContactEnquiry(r.Context(), form.Payload())
	if err != nil {
		slog.Warn("contact submission failed", "error", err)
		h.renderContact(w, r, form, &flash.Message{Type: "error", Message: userMessage(err)})
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = "Thank you for reaching out! We will get back to you within one working day."
	}
	h.flash.Success(r.Context(), w, msg)
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

// SubmitEnquiry handles the short "get in touch" form on the homepage.
func (h *Handler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	form := &models.GeneralEnquiryForm{
		Name:    r.FormValue("name"),
		Phone:   r.FormValue("phone"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}

	if msg := form.Validate(); msg != "" {
		h.renderHome(w, r, form, &flash.Message{Type: "error", Message: msg})
		return
	}

	resp, err := h.api.SubmitGeneralEnquiry(r.Context(), form.Payload())
	if err != nil {
		slog.Warn("enquiry submission failed", "error", err)
		h.renderHome(w, r, form, &flash.Message{Type: "error", Message: userMessage(err)})
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = "Thank you! Your message has been sent. We will be in touch soon."
	}
	h.flash.Success(r.Context(), w, msg)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderBooking(w http.ResponseWriter, r *http.Request, form *models.BookingForm, inline *flash.Message) {
	data := h.pageData(w, r, "Book a Consultation", "booking")
	if inline != nil {
		data.Flash = inline
	}
	data.Data["Form"] = form
	data.Data["ServiceTypes"] = models.ServiceTypes
	data.Data["TimeSlots"] = models.TimeSlots
	h.renderer.Page(w, http.StatusOK, "booking", data)
}

func (h *Handler) renderContact(w http.ResponseWriter, r *http.Request, form *models.ContactForm, inline *flash.Message) {
	data := h.pageData(w, r, "Contact Us", "contact")
	if inline != nil {
		data.Flash = inline
	}
	data.Data["Form"] = form
	data.Data["Reasons"] = contactReasons
	h.renderer.Page(w, http.StatusOK, "contact", data)
}

// parseBookingForm collects the booking fields verbatim; validation and
// payload shaping happen on the model.
func parseBookingForm(r *http.Request) *models.BookingForm {
	return &models.BookingForm{
		FirstName:             r.FormValue("first_name"),
		LastName:              r.FormValue("last_name"),
		Email:                 r.FormValue("email"),
		Phone:                 r.FormValue("phone"),
		Address:               r.FormValue("address"),
		ServiceType:           r.FormValue("service_type"),
		PreferredDate:         r.FormValue("preferred_date"),
		PreferredTime:         r.FormValue("preferred_time"),
		DueDate:               r.FormValue("due_date"),
		WeeksPregnant:         r.FormValue("weeks_pregnant"),
		PreviousPregnancies:   r.FormValue("previous_pregnancies"),
		MedicalConditions:     r.FormValue("medical_conditions"),
		CurrentMedications:    r.FormValue("current_medications"),
		AdditionalNotes:       r.FormValue("additional_notes"),
		EmergencyContactName:  r.FormValue("emergency_contact_name"),
		EmergencyContactPhone: r.FormValue("emergency_contact_phone"),
	}
}
