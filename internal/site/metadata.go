package site

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// metadataValidator returns the shared validator with the site rules
// registered. Field names in errors follow the json tags.
func metadataValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("site_origin", func(fl validator.FieldLevel) bool {
			return validOrigin(fl.Field().String())
		})

		_ = v.RegisterValidation("base_path", func(fl validator.FieldLevel) bool {
			return validBasePath(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// validOrigin accepts http(s) URLs with a host and nothing after it except
// an optional single "/".
func validOrigin(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" || u.User != nil {
		return false
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return false
	}
	return u.Path == "" || u.Path == "/"
}

// validBasePath accepts "/" and paths like "/docs/" with no empty segments.
func validBasePath(p string) bool {
	if !strings.HasPrefix(p, "/") || !strings.HasSuffix(p, "/") {
		return false
	}
	if strings.Contains(p, "//") || strings.ContainsAny(p, "?#") {
		return false
	}
	return true
}

var metadataReasons = map[string]string{
	"required":    "must not be empty",
	"url":         "must be an absolute URL",
	"site_origin": "must be an http(s) origin without path, query or fragment",
	"base_path":   "must start and end with '/' and contain no empty segments",
}

// ValidateMetadata checks m and returns a normalized copy with enum fields
// set to their defaults when blank.
func ValidateMetadata(m SiteMetadata) (SiteMetadata, error) {
	out := m.Clone()

	if err := metadataValidator().Struct(out); err != nil {
		return SiteMetadata{}, convertValidationError(err)
	}

	var ok bool
	if out.OnBrokenLinks, ok = brokenLinkPolicies.Parse(string(out.OnBrokenLinks)); !ok {
		return SiteMetadata{}, errors.NewConfigError(ComponentAssembler, "onBrokenLinks",
			"must be one of "+brokenLinkPolicies.OneOf())
	}
	if out.OnBrokenMarkdownLinks, ok = brokenLinkPolicies.Parse(string(out.OnBrokenMarkdownLinks)); !ok {
		return SiteMetadata{}, errors.NewConfigError(ComponentAssembler, "onBrokenMarkdownLinks",
			"must be one of "+brokenLinkPolicies.OneOf())
	}
	if out.Markdown.Format, ok = markdownFormats.Parse(string(out.Markdown.Format)); !ok {
		return SiteMetadata{}, errors.NewConfigError(ComponentAssembler, "markdown.format",
			"must be one of "+markdownFormats.OneOf())
	}
	for i, dir := range out.StaticDirectories {
		if strings.TrimSpace(dir) == "" {
			return SiteMetadata{}, errors.NewConfigError(ComponentAssembler,
				fmt.Sprintf("staticDirectories[%d]", i), "must not be empty")
		}
	}
	return out, nil
}

// convertValidationError reports the first validator failure as a
// ConfigError keyed by the json field path.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.NewConfigError(ComponentAssembler, "", err.Error())
	}
	fe := ves[0]
	reason, known := metadataReasons[fe.Tag()]
	if !known {
		reason = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
	return errors.NewConfigError(ComponentAssembler, fieldPath(fe), reason)
}

// fieldPath strips the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

// SiteURL joins the origin and base path into the canonical site URL. With
// TrailingSlash off the result carries no trailing slash unless it is the
// bare origin root.
func (m SiteMetadata) SiteURL() string {
	origin := strings.TrimSuffix(m.URL, "/")
	base := m.BaseURL
	if base == "" {
		base = "/"
	}
	if !m.TrailingSlash && base != "/" {
		base = strings.TrimSuffix(base, "/")
	}
	return origin + base
}
