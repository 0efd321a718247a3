package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gofiber-todo/domain/dto"
	"gofiber-todo/interfaces/api/middleware"
)

// formValue อ่านค่าจาก urlencoded หรือ multipart form; ok = มี key นี้ใน form
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if v, ok := form.Value[key]; ok && len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

// checkboxValue HTML checkbox ส่ง "on" มาเมื่อถูกติ๊ก
func checkboxValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}

// parseCreateTask JSON ใช้ BodyParser, form ใช้ formValue (รองรับ checkbox)
func parseCreateTask(c *fiber.Ctx, req *dto.CreateTaskRequest) error {
	if c.Is("json") {
		return c.BodyParser(req)
	}

	req.Title, _ = formValue(c, "title")
	if v, ok := formValue(c, "description"); ok {
		req.Description = &v
	}
	if v, ok := formValue(c, "complete"); ok {
		req.Complete = checkboxValue(v)
	}
	return nil
}

// parseUpdateTask field ที่ไม่ได้ส่งมา = ไม่เปลี่ยน
// form เต็ม (มี title) ที่ไม่มี complete แปลว่า checkbox ไม่ได้ติ๊ก
func parseUpdateTask(c *fiber.Ctx, req *dto.UpdateTaskRequest) error {
	if c.Is("json") {
		if err := c.BodyParser(req); err != nil {
			return err
		}
		req.ClearDescription = req.Description == nil && jsonFieldIsNull(c.Body(), "description")
		return nil
	}

	title, hasTitle := formValue(c, "title")
	if hasTitle {
		req.Title = &title
	}
	if v, ok := formValue(c, "description"); ok {
		req.Description = &v
	}
	if v, ok := formValue(c, "complete"); ok {
		complete := checkboxValue(v)
		req.Complete = &complete
	} else if hasTitle {
		complete := false
		req.Complete = &complete
	}
	return nil
}

// jsonFieldIsNull แยก {"key": null} ออกจาก key ที่ไม่ได้ส่งมา
func jsonFieldIsNull(body []byte, key string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	raw, ok := fields[key]
	return ok && string(bytes.TrimSpace(raw)) == "null"
}

func formDescriptor(c *fiber.Ctx, form, action string, fields ...string) dto.FormDescriptor {
	return dto.FormDescriptor{
		Form:      form,
		Action:    action,
		Method:    fiber.MethodPost,
		Fields:    fields,
		CSRFToken: middleware.CSRFToken(c),
	}
}

// safeNext รับเฉพาะ path ภายในเว็บ กัน open redirect
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return ""
	}
	return next
}
