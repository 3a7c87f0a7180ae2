package types

// GoogleAdsConfig holds the Google Ads API credentials.
type GoogleAdsConfig struct {
	CustomerID      string `json:"customer_id" yaml:"customer_id" toml:"customer_id"`
	LoginCustomerID string `json:"login_customer_id" yaml:"login_customer_id" toml:"login_customer_id"`
	DeveloperToken  string `json:"developer_token" yaml:"developer_token" toml:"developer_token"`
	ClientID        string `json:"client_id" yaml:"client_id" toml:"client_id"`
	ClientSecret    string `json:"client_secret" yaml:"client_secret" toml:"client_secret"`
	RefreshToken    string `json:"refresh_token" yaml:"refresh_token" toml:"refresh_token"`
}

// SMTPConfig holds the outbound mail transport settings.
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host" toml:"host"`
	Port     int    `json:"port" yaml:"port" toml:"port"`
	Username string `json:"username" yaml:"username" toml:"username"`
	Password string `json:"password" yaml:"password" toml:"password"`
	From     string `json:"from" yaml:"from" toml:"from"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	DateRange          string          `json:"date_range" yaml:"date_range" toml:"date_range"`
	CampaignNameFilter string          `json:"campaign_name_filter" yaml:"campaign_name_filter" toml:"campaign_name_filter"`
	Email              string          `json:"email" yaml:"email" toml:"email"`
	EmailOnly          bool            `json:"email_only" yaml:"email_only" toml:"email_only"`
	ReportName         string          `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType         []string        `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                string          `json:"dir" yaml:"dir" toml:"dir"`
	GoogleAds          GoogleAdsConfig `json:"google_ads" yaml:"google_ads" toml:"google_ads"`
	SMTP               SMTPConfig      `json:"smtp" yaml:"smtp" toml:"smtp"`
}
