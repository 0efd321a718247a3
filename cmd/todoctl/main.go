// todoctl งาน admin ของ todo service (migrate, จัดการ user, ดู tasks)
package main

import (
	"fmt"
	"os"

	"gofiber-todo/pkg/di"
)

func main() {
	root := newRootCmd(loadFromContainer)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadFromContainer ใช้ config/DB ชุดเดียวกับ API server
func loadFromContainer() (*runtime, func(), error) {
	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		return nil, nil, err
	}

	rt := &runtime{
		db:    container.DB,
		users: container.UserService,
		tasks: container.TaskService,
	}
	return rt, func() { _ = container.Cleanup() }, nil
}
