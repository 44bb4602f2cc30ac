package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	rule := Required("title", "Title")

	assert.Empty(t, rule(Record{"title": "Drive"}))
	assert.Equal(t, "Title is required", rule(Record{}))
	assert.Equal(t, "Title is required", rule(Record{"title": "   "}))
	assert.Equal(t, "Title is required", rule(Record{"title": nil}))
}

func TestEmail(t *testing.T) {
	rule := Email("email")

	assert.Empty(t, rule(Record{"email": "donor@example.com"}))
	assert.Empty(t, rule(Record{"email": "John@Example.COM"}))
	// absent field is the Required rule's concern
	assert.Empty(t, rule(Record{}))

	assert.Equal(t, "Invalid email format", rule(Record{"email": "donor@example"}))
	assert.Equal(t, "Invalid email format", rule(Record{"email": "donor example.com"}))
	assert.Equal(t, "Invalid email format", rule(Record{"email": "@example.com"}))
}

func TestMobile(t *testing.T) {
	rule := Mobile("mobile")

	assert.Empty(t, rule(Record{"mobile": "1234567890"}))
	assert.Empty(t, rule(Record{}))

	assert.Equal(t, "Mobile number must be 10 digits", rule(Record{"mobile": "123456789"}))
	assert.Equal(t, "Mobile number must be 10 digits", rule(Record{"mobile": "12345678901"}))
	assert.Equal(t, "Mobile number must be 10 digits", rule(Record{"mobile": "12345abcde"}))
}

func TestDateRule(t *testing.T) {
	rule := Date("startDate", "Start date")

	assert.Empty(t, rule(Record{"startDate": "15-01-2025"}))
	assert.Empty(t, rule(Record{"startDate": "2025-01-15"}))
	assert.Empty(t, rule(Record{}))

	assert.Equal(t, "Start date must be in DD-MM-YYYY format", rule(Record{"startDate": "31-02-2025"}))
	assert.Equal(t, "Start date must be in DD-MM-YYYY format", rule(Record{"startDate": "someday"}))
}

func TestDateOrder(t *testing.T) {
	rule := DateOrder("startDate", "EndDate")

	assert.Empty(t, rule(Record{"startDate": "15-01-2025", "EndDate": "16-01-2025"}))
	assert.Empty(t, rule(Record{"startDate": "15-01-2025", "EndDate": "15-01-2025"}))
	// mixed forms compare chronologically, not textually
	assert.Empty(t, rule(Record{"startDate": "15-01-2025", "EndDate": "2025-02-01"}))
	// invalid dates are the Date rule's concern
	assert.Empty(t, rule(Record{"startDate": "nope", "EndDate": "16-01-2025"}))
	assert.Empty(t, rule(Record{"startDate": "15-01-2025"}))

	assert.Equal(t, "End date cannot be before start date",
		rule(Record{"startDate": "16-01-2025", "EndDate": "15-01-2025"}))
}

func TestOneOf(t *testing.T) {
	rule := OneOf("status", "Status", "pending", "active", "completed")

	assert.Empty(t, rule(Record{"status": "pending"}))
	assert.Empty(t, rule(Record{"status": "ACTIVE"}))
	assert.Empty(t, rule(Record{"status": "Completed"}))
	assert.Empty(t, rule(Record{}))

	assert.Equal(t, "Status must be one of: pending, active, completed",
		rule(Record{"status": "done"}))
}

func TestGeo(t *testing.T) {
	rule := Geo("geolocation")

	geo := func(lat, lng string) Record {
		return Record{"geolocation": map[string]any{"latitude": lat, "longitude": lng}}
	}

	// absent object and absent coordinates pass
	assert.Empty(t, rule(Record{}))
	assert.Empty(t, rule(geo("", "")))

	assert.Empty(t, rule(geo("12.1678", "31.5432")))
	assert.Empty(t, rule(geo("-12.1678", "-31.5432")))

	// boundaries are inclusive
	assert.Empty(t, rule(geo("90", "180")))
	assert.Empty(t, rule(geo("-90", "-180")))

	assert.Equal(t, "Invalid geolocation format", rule(geo("90.0001", "0")))
	assert.Equal(t, "Invalid geolocation format", rule(geo("-90.0001", "0")))
	assert.Equal(t, "Invalid geolocation format", rule(geo("0", "180.0001")))
	assert.Equal(t, "Invalid geolocation format", rule(geo("0", "-180.0001")))
	assert.Equal(t, "Invalid geolocation format", rule(geo("north", "0")))
}

func TestViolationsOrder(t *testing.T) {
	rules := []Rule{
		Required("fullname", "Full name"),
		Required("email", "Email"),
		Email("email"),
		Required("mobile", "Mobile number"),
		Mobile("mobile"),
	}

	errs := Violations(Record{"email": "bad", "mobile": "123"}, rules)
	assert.Equal(t, []string{
		"Full name is required",
		"Invalid email format",
		"Mobile number must be 10 digits",
	}, errs)

	assert.Empty(t, Violations(Record{
		"fullname": "John Doe",
		"email":    "donor@example.com",
		"mobile":   "1234567890",
	}, rules))
}
