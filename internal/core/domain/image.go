package domain

import "strings"

const installedSuffix = "(installed)"

// VMImage is a guest image known to the helper.
type VMImage struct {
	Name      string `json:"name"`
	Installed bool   `json:"installed"`
}

// ParseImageList parses `image list` output, one image per line.
func ParseImageList(output string) []VMImage {
	images := []VMImage{}
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, installed := strings.CutSuffix(line, installedSuffix)
		images = append(images, VMImage{Name: strings.TrimSpace(name), Installed: installed})
	}
	return images
}

// ParsePackageList parses `apk info` output into package names.
func ParsePackageList(output string) []string {
	pkgs := []string{}
	for line := range strings.Lines(output) {
		if line = strings.TrimSpace(line); line != "" {
			pkgs = append(pkgs, line)
		}
	}
	return pkgs
}
