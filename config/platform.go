package config

// Font locator of each platform that has a native one. Others use
// fontconfig.
var fontLocators = map[string]FontLocatorSelection{
	"windows": LocatorGdi,
	"darwin":  LocatorCoreText,
}

// FontLocatorFor returns the font locator for a GOOS value.
func FontLocatorFor(goos string) FontLocatorSelection {
	if l, ok := fontLocators[goos]; ok {
		return l
	}
	return LocatorFontConfig
}
