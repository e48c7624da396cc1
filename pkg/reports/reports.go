// Package reports composes Action1 console report URLs for one organization
// and opens them in the operator's browser.
package reports

// ConsoleBaseURL is the Action1 web console root the report paths hang off.
const ConsoleBaseURL = "https://app.action1.com/console/"

// Report is one console report template: a path with its fixed query.
type Report struct {
	Title string
	Path  string
}

// catalog is the fixed set of reports opened during a client review, in the
// order they are walked through.
var catalog = []Report{
	{"Installed Web Browsers", "reports/web_browsers_1635330143409/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Installed Software", "reports/installed_software_1635330143410/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Missing Critical Updates", "reports/missing_critical_updates_1635330143411/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Antivirus Status", "reports/antivirus_status_1635330143412/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Disk Space Usage", "reports/low_disk_space_1635330143413/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Local Administrators", "reports/local_admins_1635330143414/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Operating System Summary", "reports/os_summary_1635330143415/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Installed Memory", "reports/installed_memory_1635330143416/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Startup Programs", "reports/startup_programs_1635330143417/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Running Services", "reports/running_services_1635330143418/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Network Configuration", "reports/network_configuration_1635330143419/summary?details=yes&from=0&limit=100&live_only=no"},
	{"USB Device History", "reports/usb_devices_1635330143420/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Windows Update History", "reports/update_history_1635330143421/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Remote Access Software", "reports/remote_access_software_1635330143422/summary?details=yes&from=0&limit=100&live_only=no"},
	{"Endpoint Uptime", "reports/endpoint_uptime_1635330143423/summary?details=yes&from=0&limit=100&live_only=no"},
}

// Catalog returns the fixed report catalog.
func Catalog() []Report {
	out := make([]Report, len(catalog))
	copy(out, catalog)
	return out
}

// URLs composes the report URLs for the org, in catalog order.
func URLs(orgID string) []string {
	urls := make([]string, len(catalog))
	for i, r := range catalog {
		urls[i] = ConsoleBaseURL + r.Path + "&org=" + orgID
	}
	return urls
}

// LaunchResult records the outcome of opening one URL.
type LaunchResult struct {
	URL string
	Err error
}

// Launch opens each URL via open, continuing past individual failures.
// Returns one result per URL, in order.
func Launch(urls []string, open func(string) error) []LaunchResult {
	results := make([]LaunchResult, len(urls))
	for i, u := range urls {
		results[i] = LaunchResult{URL: u, Err: open(u)}
	}
	return results
}

// Failed counts the launch failures in results.
func Failed(results []LaunchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
