package jira

// Fields holds ticket field values keyed by Jira field name, e.g.
// priority, assignee, reporter, parent, type, environment, duedate,
// or customfield_XXXXX.
type Fields map[string]interface{}

// nameWrapped enumerates the identity-like fields the API expects in
// the form {"name": value}.
var nameWrapped = map[string]struct{}{
	"priority": {},
	"assignee": {},
	"reporter": {},
	"parent":   {},
}

// normalizeFields rewrites known fields into the shape the API expects:
// identity-like fields are wrapped as {"name": value} and "type" is
// renamed to "issuetype" with the same wrapping. Unrecognized keys pass
// through verbatim. The map is mutated in place and returned.
func normalizeFields(fields Fields) Fields {
	for key, value := range fields {
		if _, ok := nameWrapped[key]; ok {
			fields[key] = map[string]interface{}{"name": value}
		}
		if key == "type" {
			fields["issuetype"] = map[string]interface{}{"name": value}
			delete(fields, "type")
		}
	}
	return fields
}
