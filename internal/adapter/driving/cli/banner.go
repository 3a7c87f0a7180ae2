package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/ppcraft/close-variant-negatives-go/pkg/version"
)

// displayWelcomeBanner shows the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ________                    _    __           _             __
        / ____/ /___  ________     | |  / /___ ______(_)___ _____  / /_
       / /   / / __ \/ ___/ _ \    | | / / __ ` + "`" + `/ ___/ / __ ` + "`" + `/ __ \/ __/
      / /___/ / /_/ (__  )  __/    | |/ / /_/ / /  / / /_/ / / / / /_
      \____/_/\____/____/\___/     |___/\__,_/_/  /_/\__,_/_/ /_/\__/
                  Negative Keywords for Exact Match Campaigns
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Close Variant Negatives CLI (v%s)", formattedVersion)))
}
