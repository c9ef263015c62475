package wizard

import (
	"fmt"

	"github.com/ThomasCrouzet/nagmaps/internal/detect"
	"github.com/charmbracelet/huh"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(site detect.Result) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Source:           "livestatus",
		LivestatusSocket: site.LivestatusSocket,
		Backend:          "localhost",
		ImagePath:        site.NagvisImagePath,
		ExampleGroups:    true,
	}

	desc := "Where should host groups come from?"
	if site.LivestatusSocket != "" {
		desc += fmt.Sprintf("\n\nAuto-detected Livestatus socket: %s", site.LivestatusSocket)
	}
	if site.OMDRoot != "" {
		desc += fmt.Sprintf("\nOMD site: %s", site.OMDRoot)
	}

	// Step 1: Source selection
	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Host group source").
				Description(desc).
				Options(
					huh.NewOption("MK Livestatus", "livestatus"),
					huh.NewOption("Saved Livestatus JSON file", "file"),
					huh.NewOption("Mock data (two sample groups)", "mock"),
				).
				Value(&answers.Source),
		),
	)

	if err := sourceForm.Run(); err != nil {
		return nil, err
	}

	// Step 2: Source-specific config
	var groups []*huh.Group

	switch answers.Source {
	case "livestatus":
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Livestatus socket").
				Description("Unix socket path, or tcp:host:port").
				Placeholder("/var/lib/nagios/rw/live").
				Value(&answers.LivestatusSocket),
		))
	case "file":
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Livestatus JSON file").
				Placeholder("./hostgroups.json").
				Value(&answers.SourceFile),
		))
	}

	// Step 3: Filtering
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Host group prefixes (comma separated)").
			Description("Leave empty to match every group").
			Placeholder("cust-").
			Value(&answers.Prefixes),
		huh.NewInput().
			Title("Host group postfixes (comma separated)").
			Description("A group has to match a prefix and a postfix").
			Value(&answers.Postfixes),
		huh.NewInput().
			Title("Only these host groups (comma separated, optional)").
			Value(&answers.Include),
		huh.NewInput().
			Title("Never these host groups (comma separated, optional)").
			Value(&answers.Exclude),
	))

	// Step 4: NagVis settings
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("NagVis backend id").
			Value(&answers.Backend),
		huh.NewInput().
			Title("Logo image directory").
			Description("Downloaded logos are stored here").
			Value(&answers.ImagePath),
		huh.NewConfirm().
			Title("Add example group logos and links?").
			Value(&answers.ExampleGroups),
	))

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}
