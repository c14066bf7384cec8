package artifactory

import "strings"

// mavenURLGenerator builds download URLs for the Maven repository layout:
// base/repo/group-as-path/artifact/version/artifact-version[-descriptor].packaging.
// It performs no validation; malformed inputs produce malformed URLs.
type mavenURLGenerator struct {
	base string
	repo string
}

func (g mavenURLGenerator) versionURL(group, artifact, packaging, version, descriptor string) string {
	groupPath := strings.ReplaceAll(group, ".", "/")

	filename := artifact + "-" + version + "." + packaging
	if descriptor != "" {
		filename = artifact + "-" + version + "-" + descriptor + "." + packaging
	}

	return strings.Join([]string{g.base, g.repo, groupPath, artifact, version, filename}, "/")
}
