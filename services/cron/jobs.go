package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/volodymyr-curly/university-sub001/model"
)

// danglingCheck counts child rows whose foreign key points at a missing
// parent. Cascade cleanup nulls these references before every parent delete,
// so each count is expected to be zero.
type danglingCheck struct {
	name  string
	query string
}

var danglingChecks = []danglingCheck{
	{"department->faculty", `SELECT COUNT(*) FROM departments d LEFT JOIN faculties f ON f.id = d.faculty_id WHERE d.faculty_id IS NOT NULL AND f.id IS NULL`},
	{"group->department", `SELECT COUNT(*) FROM "groups" g LEFT JOIN departments d ON d.id = g.department_id WHERE g.department_id IS NOT NULL AND d.id IS NULL`},
	{"employee->department", `SELECT COUNT(*) FROM employees e LEFT JOIN departments d ON d.id = e.department_id WHERE e.department_id IS NOT NULL AND d.id IS NULL`},
	{"student->group", `SELECT COUNT(*) FROM students s LEFT JOIN "groups" g ON g.id = s.group_id WHERE s.group_id IS NOT NULL AND g.id IS NULL`},
	{"teacher->employee", `SELECT COUNT(*) FROM teachers t LEFT JOIN employees e ON e.id = t.employee_id WHERE t.employee_id IS NOT NULL AND e.id IS NULL`},
	{"lecture->subject", `SELECT COUNT(*) FROM lectures l LEFT JOIN subjects s ON s.id = l.subject_id WHERE l.subject_id IS NOT NULL AND s.id IS NULL`},
	{"lecture->teacher", `SELECT COUNT(*) FROM lectures l LEFT JOIN teachers t ON t.id = l.teacher_id WHERE l.teacher_id IS NOT NULL AND t.id IS NULL`},
	{"lecture->room", `SELECT COUNT(*) FROM lectures l LEFT JOIN lecture_rooms r ON r.id = l.room_id WHERE l.room_id IS NOT NULL AND r.id IS NULL`},
	{"lecture->duration", `SELECT COUNT(*) FROM lectures l LEFT JOIN durations d ON d.id = l.duration_id WHERE l.duration_id IS NOT NULL AND d.id IS NULL`},
	{"mark->student", `SELECT COUNT(*) FROM marks m LEFT JOIN students s ON s.id = m.student_id WHERE m.student_id IS NOT NULL AND s.id IS NULL`},
	{"mark->subject", `SELECT COUNT(*) FROM marks m LEFT JOIN subjects s ON s.id = m.subject_id WHERE m.subject_id IS NOT NULL AND s.id IS NULL`},
	{"group_subjects", `SELECT COUNT(*) FROM group_subjects gs LEFT JOIN "groups" g ON g.id = gs.group_id LEFT JOIN subjects s ON s.id = gs.subject_id WHERE g.id IS NULL OR s.id IS NULL`},
	{"group_lectures", `SELECT COUNT(*) FROM group_lectures gl LEFT JOIN "groups" g ON g.id = gl.group_id LEFT JOIN lectures l ON l.id = gl.lecture_id WHERE g.id IS NULL OR l.id IS NULL`},
	{"teacher_subjects", `SELECT COUNT(*) FROM teacher_subjects ts LEFT JOIN teachers t ON t.id = ts.teacher_id LEFT JOIN subjects s ON s.id = ts.subject_id WHERE t.id IS NULL OR s.id IS NULL`},
}

// RunIntegrityAudit scans every foreign key and join table for references to
// deleted rows and records the outcome. A non-zero finding means a cascade
// was skipped or a write bypassed the services.
func (m *CronManager) RunIntegrityAudit() {
	runID := uuid.NewString()
	started := time.Now()

	audit := model.IntegrityCheckLog{
		RunID:     runID,
		Status:    "started",
		StartedAt: started,
	}
	if err := m.db.Create(&audit).Error; err != nil {
		log.Printf("[CRON] Failed to record audit run %s: %v", runID, err)
		return
	}

	total := 0
	var findings []string

	for _, check := range danglingChecks {
		var n int64
		if err := m.db.Raw(check.query).Scan(&n).Error; err != nil {
			m.finishAudit(&audit, "failed", total,
				fmt.Sprintf("check %s failed: %v", check.name, err))
			return
		}
		if n > 0 {
			total += int(n)
			findings = append(findings, fmt.Sprintf("%s: %d", check.name, n))
		}
	}

	details := "clean"
	if total > 0 {
		details = strings.Join(findings, "; ")
		log.Printf("[CRON] Integrity audit %s found %d dangling references: %s", runID, total, details)
	}
	m.finishAudit(&audit, "completed", total, details)
}

func (m *CronManager) finishAudit(audit *model.IntegrityCheckLog, status string, dangling int, details string) {
	now := time.Now()
	m.db.Model(audit).Updates(map[string]interface{}{
		"status":       status,
		"dangling":     dangling,
		"details":      details,
		"completed_at": now,
	})
	log.Printf("[CRON] Completed job: referential_integrity_audit - %s (%s)", status, details)
}
