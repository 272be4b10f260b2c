package models

type Category struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

type Product struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	CategoryID  string  `json:"category_id" bson:"categoryId"`
	ImageURL    string  `json:"image_url" bson:"imageUrl"`
	ModelURL    string  `json:"model_url,omitempty" bson:"modelUrl,omitempty"`
}
