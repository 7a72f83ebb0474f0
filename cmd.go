package main

type Command struct {
	Daemon struct {
		Config   string `help:"config file path" short:"c" required:""`
		Database string `help:"database path" short:"d" required:""`
		DryRun   bool   `help:"don't write any backups, just print the output"`
	} `cmd:"" help:"Run the periodic backup service."`
	Backup struct {
		Config   string `help:"config file path" short:"c" required:""`
		Database string `help:"database path" short:"d" required:""`
		DryRun   bool   `help:"don't write any backups, just print the output"`
	} `cmd:"" help:"Capture a single backup now."`
	List struct {
		Database string `help:"database path" short:"d" required:""`
		Limit    int    `help:"maximum number of backups to print" default:"20"`
	} `cmd:"" help:"Print the most recent backups."`
	Latest struct {
		Database string `help:"database path" short:"d" required:""`
		Code     bool   `help:"print the raw save code instead of metadata"`
	} `cmd:"" help:"Print the most recent backup."`
	Prune struct {
		Database string `help:"database path" short:"d" required:""`
		Keep     int    `help:"number of recent backups to keep" required:""`
		DryRun   bool   `help:"don't delete any backups, just print the output"`
	} `cmd:"" help:"Delete all but the most recent backups."`
}
