// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

// SubmitResponse is the backend's acknowledgement of a form submission.
type SubmitResponse struct {
	Message string `json:"message"`
}

// Default user-facing messages when the backend response carries none.
const (
	defaultBookingError = "Failed to submit booking"
	defaultEnquiryError = "Failed to submit enquiry"
	defaultContactError = "Failed to submit contact form"
)

// SubmitBooking creates an appointment booking. On non-2xx responses the
// returned error is an *APIError whose Message is suitable for display.
func (c *Client) SubmitBooking(ctx context.Context, booking *models.BookingPayload) (*SubmitResponse, error) {
	var resp SubmitResponse
	if err := c.post(ctx, "/bookings/", booking, &resp, defaultBookingError); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitGeneralEnquiry creates a general enquiry.
func (c *Client) SubmitGeneralEnquiry(ctx context.Context, enquiry *models.GeneralEnquiryPayload) (*SubmitResponse, error) {
	var resp SubmitResponse
	if err := c.post(ctx, "/general-enquiries/", enquiry, &resp, defaultEnquiryError); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitContactEnquiry creates a contact enquiry.
func (c *Client) SubmitContactEnquiry(ctx context.Context, enquiry *models.ContactEnquiryPayload) (*SubmitResponse, error) {
	var resp SubmitResponse
	if err := c.post(ctx, "/contact-enquiries/", enquiry, &resp, defaultContactError); err != nil {
		return nil, err
	}
	return &resp, nil
}
