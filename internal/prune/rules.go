package prune

import "github.com/uvi-dev/uvi/internal/options"

// rule contributes ops when its predicate holds. Rules are evaluated once,
// in table order.
type rule struct {
	name string
	when func(options.Options) bool
	ops  func(options.Options) []Op
}

var rules = []rule{
	{
		name: "github-actions",
		when: func(o options.Options) bool { return !o.GitHubActions.On() },
		ops:  func(options.Options) []Op { return []Op{removeDirOp(pathCIDir)} },
	},
	{
		// Only reachable while the CI directory is kept.
		name: "release-workflow",
		when: func(o options.Options) bool {
			return o.GitHubActions.On() && !o.MkDocs.On() && o.PublishToPyPI.Off()
		},
		ops: func(options.Options) []Op { return []Op{removeFileOp(pathReleaseWorkflow)} },
	},
	{
		name: "mkdocs",
		when: func(o options.Options) bool { return !o.MkDocs.On() },
		ops: func(options.Options) []Op {
			return []Op{removeDirOp(pathDocsDir), removeFileOp(pathMkDocsConfig)}
		},
	},
	{
		name: "dockerfile",
		when: func(o options.Options) bool { return !o.Dockerfile.On() },
		ops:  func(options.Options) []Op { return []Op{removeFileOp(pathDockerfile)} },
	},
	{
		name: "codecov",
		when: func(o options.Options) bool { return !o.Codecov.On() },
		ops: func(o options.Options) []Op {
			ops := []Op{removeFileOp(pathCodecovConfig)}
			if o.GitHubActions.On() {
				ops = append(ops, removeFileOp(pathCodecovWorkflow))
			}
			return ops
		},
	},
	{
		name: "devcontainer",
		when: func(o options.Options) bool { return !o.Devcontainer.On() },
		ops:  func(options.Options) []Op { return []Op{removeDirOp(pathDevcontainerDir)} },
	},
	{
		name: "license",
		when: func(options.Options) bool { return true },
		ops:  licenseOps,
	},
}

var licenseCandidates = map[options.License]string{
	options.LicenseMIT:    pathLicenseMIT,
	options.LicenseBSD:    pathLicenseBSD,
	options.LicenseISC:    pathLicenseISC,
	options.LicenseApache: pathLicenseApache,
	options.LicenseGPL:    pathLicenseGPL,
}

// licenseOps promotes at most one candidate. An unknown license yields no
// ops at all.
func licenseOps(o options.Options) []Op {
	switch o.License {
	case options.LicenseMIT, options.LicenseBSD, options.LicenseISC, options.LicenseApache, options.LicenseGPL:
		ops := []Op{moveOp(licenseCandidates[o.License], pathLicense)}
		for _, l := range options.OpenSourceLicenses() {
			if l != o.License {
				ops = append(ops, removeFileOp(licenseCandidates[l]))
			}
		}
		return ops
	case options.LicenseNone:
		ops := make([]Op, 0, len(licenseCandidates))
		for _, l := range options.OpenSourceLicenses() {
			ops = append(ops, removeFileOp(licenseCandidates[l]))
		}
		return ops
	default:
		return nil
	}
}

// Plan returns the ops a pass over o performs, in execution order.
func Plan(o options.Options) []Op {
	var ops []Op
	for _, r := range rules {
		if !r.when(o) {
			continue
		}
		for _, op := range r.ops(o) {
			op.Rule = r.name
			ops = append(ops, op)
		}
	}
	return ops
}

func removeFileOp(p string) Op { return Op{Action: ActionRemoveFile, Path: p} }
func removeDirOp(p string) Op  { return Op{Action: ActionRemoveDir, Path: p} }
func moveOp(from, to string) Op {
	return Op{Action: ActionMove, Path: from, Target: to}
}
