package email

// PreviewData holds sample template data for the email-preview command.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserEmail":         "editor@grampanchayat.gov.in",
		"Role":              "editor",
		"AdminURL":          "http://localhost:3000/admin",
		"GrampanchayatName": "Grampanchayat",
	},
}
