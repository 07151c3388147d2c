package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demosh/demosh/internal/config"
	"github.com/demosh/demosh/internal/interp"
	"github.com/demosh/demosh/internal/logging"
	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/tui"
	"github.com/demosh/demosh/internal/vfs"
	"github.com/demosh/demosh/pkg/demosh"
)

// runSession is the root command: load the profile, seed the tree, and
// hand the session to the terminal view or the plain REPL.
func runSession(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	profile, err := loadProfile(cmd, logger)
	if err != nil {
		return err
	}

	tree, err := buildTree(profile)
	if err != nil {
		return fmt.Errorf("%w: seeding failed: %v", demosh.ErrInvalidConfig, err)
	}

	st := session.New(profile.User, profile.ElevatedUser, profile.Host, profile.Home)
	in := interp.New(logger)
	logger.Verbose("session %s: %s@%s home=%s", st.ID, st.User, st.Host, st.Home)

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !tui.IsInteractive() {
		_, err = tui.RunPlain(st, tree, in, os.Stdin, os.Stdout)
		return err
	}
	return tui.Run(st, tree, in)
}

// loadProfile resolves the profile path (flag, then DEMOSH_CONFIG, then
// ./demosh.yaml) and loads it. A missing default profile is not an error;
// the built-in defaults apply.
func loadProfile(cmd *cobra.Command, logger demosh.Logger) (*config.Profile, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("DEMOSH_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = config.ConfigFileName
		}
	}

	profile, err := config.Load(path)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if explicit {
			return nil, fmt.Errorf("%w: profile %s not found", demosh.ErrInvalidConfig, path)
		}
		logger.Verbose("no %s found, using built-in profile", config.ConfigFileName)
		profile = config.Default()
	case err != nil:
		return nil, err
	default:
		logger.Verbose("loaded profile from %s", path)
	}

	profile.ApplyEnv()
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// buildTree seeds the virtual filesystem: the fixed default tree, the
// profile's home directory, then the profile's seed overlay.
func buildTree(profile *config.Profile) (vfs.Tree, error) {
	entries := make([]vfs.SeedEntry, 0, len(profile.Seed)+1)
	// The home directory must exist before the session starts in it.
	entries = append(entries, vfs.SeedEntry{Path: profile.Home, Dir: true})
	for _, e := range profile.Seed {
		entries = append(entries, vfs.SeedEntry{Path: e.Path, Dir: e.Dir, Content: e.Content})
	}
	return vfs.DefaultTree().ApplySeed(entries)
}
