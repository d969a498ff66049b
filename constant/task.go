package constant

type TaskStatus string

const (
	TaskStatusPosted     TaskStatus = "posted"
	TaskStatusAccepted   TaskStatus = "accepted"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
	TaskStatusDisputed   TaskStatus = "disputed"
)

type TaskCategory string

const (
	CategoryDelivery       TaskCategory = "delivery"
	CategoryCleaning       TaskCategory = "cleaning"
	CategoryHandyman       TaskCategory = "handyman"
	CategoryMoving         TaskCategory = "moving"
	CategoryBeauty         TaskCategory = "beauty"
	CategoryTechSupport    TaskCategory = "tech_support"
	CategoryTutoring       TaskCategory = "tutoring"
	CategoryPetCare        TaskCategory = "pet_care"
	CategoryTransportation TaskCategory = "transportation"
	CategoryOther          TaskCategory = "other"
)

const (
	TaskPriorityNormal    = "normal"
	TaskPriorityUrgent    = "urgent"
	TaskPriorityScheduled = "scheduled"
)
