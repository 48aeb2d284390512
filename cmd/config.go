package cmd

import "fmt"

// Config carries every runtime setting, populated from the environment by the
// entrypoints.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret verifies the HS256 access tokens issued by the identity
	// provider.
	JWTSecret string

	// AllowedEmailDomains is the signup allow-list; empty falls back to
	// account.DefaultAllowedDomains.
	AllowedEmailDomains []string

	// SMTP settings for the notification mailer. An empty SMTPHost disables
	// email entirely; status changes are then dropped silently.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// Demo traffic simulation. Both jobs are off unless explicitly enabled.
	OrderLoadJobEnabled        bool
	OrderLoadJobSchedule       string
	OrderLoadJobOrdersPerTick  int
	OrderLoadJobCustomerEmails []string
	FulfillmentJobEnabled      bool
	FulfillmentJobSchedule     string
	FulfillmentJobBatchSize    int
}

// DBConnectionString renders the postgres DSN for gorm's pgx-backed driver.
func (c Config) DBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
