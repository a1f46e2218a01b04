package model

// AppConfig holds application-wide preferences and default settings that
// persist between runs.
type AppConfig struct {
	// Defaults applied when a project file omits them
	DefaultZipCode   string  `json:"default_zip_code"`
	DefaultLaborRate float64 `json:"default_labor_rate"` // dollars per hour

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultZipCode:   "",
		DefaultLaborRate: 55.0,
		RecentProjects:   []string{},
	}
}

// MaxRecentProjects bounds the recent-projects list.
const MaxRecentProjects = 10

// AddRecentProject moves a project path to the front of the recent list,
// removing any earlier occurrence and trimming the list to its cap.
func (c *AppConfig) AddRecentProject(path string) {
	recent := make([]string, 0, len(c.RecentProjects)+1)
	recent = append(recent, path)
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentProjects {
		recent = recent[:MaxRecentProjects]
	}
	c.RecentProjects = recent
}
