package layout

// Default returns the canonical web service skeleton: a compose file at the
// root and a web/ directory holding the container build files, the
// application package and its routers.
//
// Each call returns a fresh value so callers may modify it freely.
func Default() DirectoryGroup {
	return DirectoryGroup{
		Files: []string{"docker-compose.yml"},
		Children: []Node{
			DirectoryGroup{
				Name:  "web",
				Files: []string{"Dockerfile", "requirements.txt"},
				Children: []Node{
					DirectoryGroup{
						Name:  "app",
						Files: []string{"main.py", "db.py"},
						Children: []Node{
							FileList{
								Name:  "routers",
								Files: []string{"__init__.py", "schema.py", "query.py"},
							},
						},
					},
				},
			},
		},
	}
}
