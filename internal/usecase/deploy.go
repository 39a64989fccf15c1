package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jjformat/jjlf/internal/banlist"
	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/edopro"
	"github.com/jjformat/jjlf/internal/filesystem"
	"github.com/jjformat/jjlf/internal/git"
)

// ErrUnknownList is returned when a list name is not part of the plan.
var ErrUnknownList = errors.New("unknown list")

// DeployOptions locates the inputs and outputs of a deployment.
type DeployOptions struct {
	ChangesDir    string
	DeployDir     string
	HistoryPrefix string
	JuniorPrefix  string
	Lists         edopro.Options
	// Clean removes existing .conf files before writing.
	Clean bool
}

// WrittenList describes one deployed file.
type WrittenList struct {
	Name        string
	Kind        edopro.ListKind
	Path        string
	Archived    bool
	Hash        string
	Banned      int
	Limited     int
	Semilimited int
	Unlimited   int
}

// DeployResult summarises a deployment.
type DeployResult struct {
	Cleaned int
	Lists   []WrittenList
	// Repo is the state of the deployment directory's git checkout after
	// writing. Nil when it could not be inspected.
	Repo *git.RepoStatus
}

// Deploy builds the banlist history and writes every planned list.
type Deploy struct {
	catalog *carddb.Catalog
	opts    DeployOptions
	logger  *slog.Logger
}

func NewDeploy(catalog *carddb.Catalog, opts DeployOptions, logger *slog.Logger) *Deploy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deploy{
		catalog: catalog,
		opts:    opts,
		logger:  logger,
	}
}

// History parses the change files and folds them into snapshots. Any invalid
// change file aborts.
func (u *Deploy) History(ctx context.Context) (*History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	changeSets, err := banlist.LoadHistory(u.catalog, u.opts.ChangesDir, u.opts.HistoryPrefix, u.logger)
	if err != nil {
		return nil, err
	}
	if len(changeSets) == 0 {
		return nil, fmt.Errorf("%w in %s", banlist.ErrNoHistory, u.opts.ChangesDir)
	}

	junior, err := u.juniorRoyale()
	if err != nil {
		return nil, err
	}

	return &History{
		ChangeSets: changeSets,
		Snapshots:  banlist.BuildSequence(changeSets),
		Junior:     junior,
	}, nil
}

func (u *Deploy) juniorRoyale() (*banlist.ChangeSet, error) {
	path, err := banlist.FindJuniorRoyale(u.opts.ChangesDir, u.opts.JuniorPrefix)
	if err != nil || path == "" {
		return nil, err
	}

	result, err := banlist.ParseChangeSetFile(u.catalog, path, u.logger)
	if err != nil {
		return nil, err
	}
	if err := result.Err(path); err != nil {
		return nil, err
	}
	return result.ChangeSet, nil
}

// Plan returns every list a deployment would write.
func (u *Deploy) Plan(ctx context.Context) ([]edopro.List, error) {
	history, err := u.History(ctx)
	if err != nil {
		return nil, err
	}
	return edopro.Plan(history.Snapshots, history.Junior, u.opts.Lists)
}

// Pool projects the planned list called name.
func (u *Deploy) Pool(ctx context.Context, name string) (edopro.List, banlist.CardPool, error) {
	lists, err := u.Plan(ctx)
	if err != nil {
		return edopro.List{}, banlist.CardPool{}, err
	}
	for _, list := range lists {
		if list.Name == name {
			return list, banlist.Project(u.catalog, list.Snapshot, list.Start, list.End), nil
		}
	}
	return edopro.List{}, banlist.CardPool{}, fmt.Errorf("%w: %s", ErrUnknownList, name)
}

// Run cleans the deployment directory when asked, then renders and writes
// every planned list.
func (u *Deploy) Run(ctx context.Context) (*DeployResult, error) {
	result := &DeployResult{}

	// Validate everything before touching the deployment directory.
	lists, err := u.Plan(ctx)
	if err != nil {
		return nil, err
	}

	if u.opts.Clean {
		cleaned, err := filesystem.CleanDeployment(u.opts.DeployDir)
		if err != nil {
			return nil, fmt.Errorf("failed to clean deployment directory: %w", err)
		}
		result.Cleaned = cleaned
		u.logger.Debug("cleaned deployment directory", "dir", u.opts.DeployDir, "removed", cleaned)
	}

	for _, list := range lists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pool := banlist.Project(u.catalog, list.Snapshot, list.Start, list.End)
		content := edopro.Render(list.PrettyName, pool, list.Junior)
		archived := edopro.Archived(list.Name, u.opts.Lists)

		path, hash, err := filesystem.WriteList(u.opts.DeployDir, list.Name, content, archived)
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", list.Name, err)
		}

		u.logger.Info("wrote list", "name", list.Name, "path", path, "cards", pool.Len())
		result.Lists = append(result.Lists, WrittenList{
			Name:        list.Name,
			Kind:        list.Kind,
			Path:        path,
			Archived:    archived,
			Hash:        hash,
			Banned:      len(pool.Banned),
			Limited:     len(pool.Limited),
			Semilimited: len(pool.Semilimited),
			Unlimited:   len(pool.Unlimited),
		})
	}

	repo, err := git.GetRepoStatus(u.opts.DeployDir)
	if err != nil {
		u.logger.Warn("failed to inspect deployment repository", "dir", u.opts.DeployDir, "error", err)
	} else {
		result.Repo = repo
	}

	return result, nil
}
