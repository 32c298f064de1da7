// Package gitmeta derives site ownership metadata (organization and project
// name) from the git repository that holds a site configuration.
package gitmeta

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultRemote is the remote consulted when none is given.
const DefaultRemote = "origin"

// Info describes the repository a site lives in.
type Info struct {
	RemoteURL    string
	Host         string
	Organization string
	Project      string
	Branch       string
}

// Detect opens the repository containing dir, searching parent directories,
// and reads the named remote.
func Detect(dir, remote string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, errors.WrapError(err, errors.CategoryGit, "open repository").
			WithContext("path", dir).Build()
	}
	return FromRepository(repo, remote)
}

// FromRepository reads the named remote of repo. The branch is left empty
// when HEAD does not point at a branch.
func FromRepository(repo *git.Repository, remote string) (Info, error) {
	if remote == "" {
		remote = DefaultRemote
	}
	rem, err := repo.Remote(remote)
	if err != nil {
		return Info{}, errors.WrapError(err, errors.CategoryGit, fmt.Sprintf("read remote %q", remote)).Build()
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return Info{}, errors.GitError(fmt.Sprintf("remote %q has no URL", remote)).Build()
	}

	info, err := ParseRemoteURL(urls[0])
	if err != nil {
		return Info{}, err
	}

	head, err := repo.Head()
	switch {
	case err == nil && head.Name().IsBranch():
		info.Branch = head.Name().Short()
	case err != nil && !stderrors.Is(err, plumbing.ErrReferenceNotFound):
		return Info{}, errors.WrapError(err, errors.CategoryGit, "resolve HEAD").Build()
	}
	return info, nil
}

// ParseRemoteURL splits a remote URL into host, organization and project.
// https, ssh:// and scp-style (git@host:org/repo.git) forms are accepted.
// Nested groups stay in Organization ("group/sub").
func ParseRemoteURL(raw string) (Info, error) {
	raw = strings.TrimSpace(raw)
	host, p, ok := splitRemote(raw)
	if !ok {
		return Info{}, errors.GitError(fmt.Sprintf("unsupported remote URL %q", raw)).Build()
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	idx := strings.LastIndex(p, "/")
	if idx <= 0 || idx == len(p)-1 {
		return Info{}, errors.GitError(fmt.Sprintf("remote URL %q has no owner/project path", raw)).Build()
	}
	return Info{
		RemoteURL:    raw,
		Host:         host,
		Organization: p[:idx],
		Project:      p[idx+1:],
	}, nil
}

func splitRemote(raw string) (host, p string, ok bool) {
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return "", "", false
		}
		switch u.Scheme {
		case "http", "https", "ssh", "git":
			return u.Hostname(), u.Path, true
		}
		return "", "", false
	}
	// scp-like: [user@]host:path
	hostPart, pathPart, found := strings.Cut(raw, ":")
	if !found || pathPart == "" {
		return "", "", false
	}
	if _, h, hasUser := strings.Cut(hostPart, "@"); hasUser {
		hostPart = h
	}
	if hostPart == "" || strings.ContainsAny(hostPart, "/\\") {
		return "", "", false
	}
	return hostPart, pathPart, true
}

// Apply fills empty organization and project names in meta from info.
// Values already set are kept.
func Apply(meta *site.SiteMetadata, info Info) {
	if meta.OrganizationName == "" {
		meta.OrganizationName = info.Organization
	}
	if meta.ProjectName == "" {
		meta.ProjectName = info.Project
	}
}
