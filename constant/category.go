package constant

// ServiceCategory is a static catalog entry served by GET /api/categories.
type ServiceCategory struct {
	ID   TaskCategory `json:"id"`
	Name string       `json:"name"`
	Icon string       `json:"icon"`
}

var ServiceCategories = []ServiceCategory{
	{ID: CategoryDelivery, Name: "Delivery & Courier", Icon: "🚚"},
	{ID: CategoryCleaning, Name: "Cleaning Services", Icon: "🧽"},
	{ID: CategoryHandyman, Name: "Handyman & Repairs", Icon: "🔧"},
	{ID: CategoryMoving, Name: "Moving & Lifting", Icon: "📦"},
	{ID: CategoryBeauty, Name: "Beauty & Wellness", Icon: "💄"},
	{ID: CategoryTechSupport, Name: "Tech Support", Icon: "💻"},
	{ID: CategoryTutoring, Name: "Tutoring & Teaching", Icon: "📚"},
	{ID: CategoryPetCare, Name: "Pet Care", Icon: "🐕"},
	{ID: CategoryTransportation, Name: "Transportation", Icon: "🚗"},
	{ID: CategoryOther, Name: "Other Services", Icon: "⚡"},
}
