package models

// AuditAction names a staff write recorded in the audit log.
type AuditAction string

const (
	AuditStudentsExport      AuditAction = "students.export"
	AuditTaskCreate          AuditAction = "task.create"
	AuditTaskUpdateStatus    AuditAction = "task.update_status"
	AuditNoteCreate          AuditAction = "note.create"
	AuditNoteUpdate          AuditAction = "note.update"
	AuditNoteDelete          AuditAction = "note.delete"
	AuditCommunicationCreate AuditAction = "communication.create"
	AuditInteractionCreate   AuditAction = "interaction.create"
	AuditUserRegister        AuditAction = "user.register"
	AuditConfigUpdate        AuditAction = "config.update"
)
