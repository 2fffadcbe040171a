package server

// registerRoutes maps the REST resources onto their handlers. Each entity
// keeps the whole-resource verb set of the original API: updates and
// deletes address records through the request body, not the path.
func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/tasks", s.listTasks)
	e.POST("/tasks", s.createTask)
	e.PUT("/tasks", s.updateTask)
	e.DELETE("/tasks", s.deleteTask)

	e.GET("/projects", s.listProjects)
	e.POST("/projects", s.createProject)
	e.PUT("/projects", s.updateProject)
	e.DELETE("/projects", s.deleteProject)

	e.GET("/users", s.listUsers)
	e.POST("/users", s.createUser)
	e.DELETE("/users", s.deleteUser)

	e.GET("/comments", s.listComments)
	e.POST("/comments", s.createComment)
	e.DELETE("/comments", s.deleteComment)

	e.GET("/settings", s.getSettings)
	e.POST("/settings", s.updateSettings)

	e.GET("/stats", s.getStats)
}
