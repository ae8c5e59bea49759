package ui

// AppName is shown in screen titles.
const AppName = "ddv"

// AppDescription and AppHomepage are shown by the help screen.
const (
	AppDescription = "Terminal UI for Amazon DynamoDB"
	AppHomepage    = "https://github.com/willibrandon/ddv"
)

// Version is set at build time.
var Version = "dev"
