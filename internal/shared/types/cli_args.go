package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile         string
	DateRange          string
	CampaignNameFilter string
	Email              string
	EmailOnly          bool
	ReportName         string
	ReportType         []string
	Dir                string
}
