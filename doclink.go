package gloss

import "strings"

// docLinks maps well-known technologies to their official documentation.
// Kept as an ordered list so lookups are deterministic when a term
// matches more than one entry.
var docLinks = []struct {
	key string
	url string
}{
	{"kubernetes", "https://kubernetes.io/docs/"},
	{"docker", "https://docs.docker.com/"},
	{"react", "https://react.dev/"},
	{"python", "https://docs.python.org/3/"},
	{"javascript", "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
	{"typescript", "https://www.typescriptlang.org/docs/"},
	{"aws", "https://docs.aws.amazon.com/"},
	{"git", "https://git-scm.com/doc"},
	{"postgresql", "https://www.postgresql.org/docs/"},
	{"mongodb", "https://www.mongodb.com/docs/"},
	{"redis", "https://redis.io/docs/"},
	{"graphql", "https://graphql.org/learn/"},
	{"rest", "https://restfulapi.net/"},
	{"oauth", "https://oauth.net/2/"},
	{"jwt", "https://jwt.io/introduction"},
	{"nginx", "https://nginx.org/en/docs/"},
	{"terraform", "https://developer.hashicorp.com/terraform/docs"},
	{"ansible", "https://docs.ansible.com/"},
	{"jenkins", "https://www.jenkins.io/doc/"},
	{"github", "https://docs.github.com/"},
}

// FindDocLink returns the official documentation URL for a term, matching
// when the term contains a known technology name or vice versa. Returns
// "" when no link is known.
func FindDocLink(term string) string {
	term = strings.ToLower(term)
	for _, dl := range docLinks {
		if strings.Contains(term, dl.key) || strings.Contains(dl.key, term) {
			return dl.url
		}
	}
	return ""
}
