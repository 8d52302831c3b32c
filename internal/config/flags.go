package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-crm-url CiviCRM site root URL
//	-crm-api-key CiviCRM API key
//	-chat-url Mattermost server root URL
//	-chat-token Mattermost service account token
//	-chat-team Mattermost team name
//	-a admin server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-sync-interval scheduled sync interval (e.g., "10m")
//	-page-size batch page size
//	-credential-secret secret for sealing provisioned credentials
func ParseFlags() *StructuredConfig {
	var crmURL, crmAPIKey string
	var chatURL, chatToken, chatTeam string
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var syncInterval time.Duration
	var pageSize int
	var credentialSecret string

	flag.StringVar(&crmURL, "crm-url", "", "CiviCRM site root URL")
	flag.StringVar(&crmAPIKey, "crm-api-key", "", "CiviCRM API key")
	flag.StringVar(&chatURL, "chat-url", "", "Mattermost server root URL")
	flag.StringVar(&chatToken, "chat-token", "", "Mattermost service account token")
	flag.StringVar(&chatTeam, "chat-team", "", "Mattermost team name")
	flag.StringVar(&serverAddress, "a", "", "Admin server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Scheduled sync interval (e.g., 10m)")
	flag.IntVar(&pageSize, "page-size", 0, "Batch page size")
	flag.StringVar(&credentialSecret, "credential-secret", "", "Secret for sealing provisioned credentials")

	flag.Parse()

	return &StructuredConfig{
		CRM: CRM{
			BaseURL: crmURL,
			APIKey:  crmAPIKey,
		},
		Chat: Chat{
			BaseURL:  chatURL,
			Token:    chatToken,
			TeamName: chatTeam,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Interval:         syncInterval,
			PageSize:         pageSize,
			CredentialSecret: credentialSecret,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
