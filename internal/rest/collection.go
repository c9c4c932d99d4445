package rest

//go:generate colgen -imports=github.com/quizzle-app/quizzle/internal/quizzle
//colgen:Category,Question
//colgen:Category:Map(quizzle),Index(ID)
//colgen:Question:Map(quizzle),Index(ID)
