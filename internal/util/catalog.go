package util

// KnownSkills are platform names whose lower-cased form is a simple-icons
// logo slug, so the generated badges show an icon.
var KnownSkills = []string{
	"Angular", "Ansible", "Arduino", "Bash", "C", "CSharp", "CPlusPlus", "CSS3",
	"Dart", "Django", "Docker", "DotNet", "Elixir", "Express", "Figma", "Firebase",
	"Flask", "Flutter", "Git", "GitHubActions", "GitLab", "Go", "GraphQL", "Gradle",
	"Haskell", "HTML5", "Java", "JavaScript", "Jenkins", "Jira", "Julia", "Kotlin",
	"Kubernetes", "Laravel", "Linux", "Lua", "MariaDB", "Markdown", "MongoDB",
	"MySQL", "Neovim", "Nginx", "NodeDotJs", "npm", "OCaml", "Perl", "PHP",
	"PostgreSQL", "PowerShell", "Prometheus", "Python", "PyTorch", "R", "React",
	"Redis", "Ruby", "Rust", "Sass", "Scala", "Spring", "SQLite", "Svelte", "Swift",
	"TailwindCSS", "TensorFlow", "Terraform", "TypeScript", "Ubuntu", "Vim",
	"VueDotJs", "Webpack", "WPF", "Zig",
}

// KnownSocials are common profile platforms with a matching logo.
var KnownSocials = []string{
	"Bluesky", "Codepen", "DevDotTo", "Discord", "Dribbble", "Facebook", "GitHub",
	"GitLab", "Hashnode", "Instagram", "Kaggle", "LeetCode", "LinkedIn", "Mastodon",
	"Medium", "Reddit", "StackOverflow", "Telegram", "Threads", "TikTok", "Twitch",
	"X", "YouTube",
}

// SuggestSkills returns up to n known skill names matching input.
func SuggestSkills(input string, n int) []string {
	return ScoreCompletions(input, KnownSkills, n)
}

// SuggestSocials returns up to n known social platforms matching input.
func SuggestSocials(input string, n int) []string {
	return ScoreCompletions(input, KnownSocials, n)
}
