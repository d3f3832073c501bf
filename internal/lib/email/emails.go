package email

// SendWelcomeEmail tells a new user that an admin panel account exists for them.
func (c *Client) SendWelcomeEmail(to, role string) error {
	data := map[string]string{
		"UserEmail":         to,
		"Role":              role,
		"AdminURL":          c.adminURL,
		"GrampanchayatName": "Grampanchayat",
	}

	return c.SendEmail(
		to,
		"Your Grampanchayat admin account",
		TemplateWelcome,
		data,
	)
}
