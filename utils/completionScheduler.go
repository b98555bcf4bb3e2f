package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeCompletionScheduler sets up the background jobs: a nightly
// completion backfill and a weekly enrollment digest for teachers.
func InitializeCompletionScheduler() {
	log.Println("[SCHEDULER] Initializing completion scheduler...")

	c := cron.New()

	// Nightly at 02:30: stamp completions that were rolled up to 100%
	// but never got a timestamp (e.g. module unpublished after the fact).
	c.AddFunc("30 2 * * *", func() {
		log.Println("[SCHEDULER] Running completion backfill...")
		BackfillCompletions()
	})

	// Monday 08:00: enrollment digest per teacher for the previous week.
	c.AddFunc("0 8 * * MON", func() {
		log.Println("[SCHEDULER] Running weekly teacher digest...")
		SendWeeklyTeacherDigests()
	})

	c.Start()
	log.Println("[SCHEDULER] Completion scheduler started")
}

// BackfillCompletions stamps CompletedAt on enrollments that reached full
// progress without a completion timestamp.
func BackfillCompletions() {
	db := database.Database.Db
	ts := time.Now()

	result := db.Model(&models.Enrollment{}).
		Where("progress >= ? AND completed_at IS NULL", 1.0).
		Update("completed_at", ts)
	if result.Error != nil {
		log.Printf("[SCHEDULER] Error backfilling completions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SCHEDULER] Backfilled %d completed enrollment(s)", result.RowsAffected)
	}
}

// SendWeeklyTeacherDigests mails each active teacher the count of
// enrollments their courses collected in the previous calendar week.
func SendWeeklyTeacherDigests() {
	db := database.Database.Db

	weekStart := now.BeginningOfWeek()
	prevWeekStart := weekStart.AddDate(0, 0, -7)

	var teachers []models.User
	if err := db.Where("role = ? AND is_active = ?", models.RoleTeacher, true).Find(&teachers).Error; err != nil {
		log.Printf("[SCHEDULER] Error fetching teachers: %v", err)
		return
	}

	for _, teacher := range teachers {
		var count int64
		err := db.Model(&models.Enrollment{}).
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.teacher_id = ?", teacher.ID).
			Where("enrollments.created_at >= ? AND enrollments.created_at < ?", prevWeekStart, weekStart).
			Count(&count).Error
		if err != nil {
			log.Printf("[SCHEDULER] Error counting enrollments for teacher %d: %v", teacher.ID, err)
			continue
		}

		if count == 0 {
			continue
		}

		SendTeacherDigestEmail(teacher.Email, teacher.FullName(), count)
	}
}
