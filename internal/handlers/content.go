// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

// Service is a care offering shown on the homepage grid and the services
// page. Value doubles as the booking form's service_type preselection.
type Service struct {
	Name        string
	Description string
	Value       string
}

// Testimonial is a quote shown on the homepage.
type Testimonial struct {
	Quote string
	Name  string
}

// Value is a practice principle shown on the about page.
type Value struct {
	Name        string
	Description string
}

var services = []Service{
	{
		Name:        "Antenatal Care & Follow-Up",
		Description: "Regular check-ups, growth monitoring and birth planning throughout your pregnancy.",
		Value:       "Antenatal Care & Follow-Up",
	},
	{
		Name:        "Preparation for Labor & Delivery",
		Description: "Birth preparation classes, breathing techniques and personalised birth plans.",
		Value:       "Preparation for Labor & Delivery",
	},
	{
		Name:        "Postpartum Care & Follow-Up",
		Description: "Home visits, breastfeeding support and recovery care for mother and baby.",
		Value:       "Postpartum Care & Follow-Up",
	},
	{
		Name:        "Preconception Care",
		Description: "Health assessments and guidance for couples planning a pregnancy.",
		Value:       "Preconception Care",
	},
	{
		Name:        "Partner Health Support",
		Description: "Involving partners in the journey with education and emotional support.",
		Value:       "Partner Health Support",
	},
	{
		Name:        "Teenage Empowerment & Reproductive Education",
		Description: "Age-appropriate reproductive health education and mentorship for young people.",
		Value:       "Teenage Empowerment & Reproductive Education",
	},
}

var testimonials = []Testimonial{
	{
		Quote: "My midwife was with me every step of the way. I felt safe, heard and genuinely cared for.",
		Name:  "Grace W.",
	},
	{
		Quote: "The postpartum home visits made those first weeks so much easier. I cannot recommend them enough.",
		Name:  "Amina O.",
	},
	{
		Quote: "As a first-time dad I had a hundred questions. The partner support sessions answered every one.",
		Name:  "David M.",
	},
}

var aboutValues = []Value{
	{
		Name:        "Compassion First",
		Description: "Every mother is met with warmth, patience and respect for her choices.",
	},
	{
		Name:        "Evidence-Based Care",
		Description: "Our practice follows current clinical guidelines and research.",
	},
	{
		Name:        "Family-Centred",
		Description: "Partners and families are part of the journey, not bystanders.",
	},
	{
		Name:        "Always Reachable",
		Description: "Clients can reach their care team day and night, every day of the year.",
	},
}

// contactReasons populates the contact form's reason dropdown.
var contactReasons = []string{
	"General Question",
	"Booking Enquiry",
	"Service Information",
	"Pregnancy Concern",
	"Feedback",
	"Other",
}
