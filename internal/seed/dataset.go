package seed

import (
	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/gomesdev1/portfolio-api/pkg/dto"
)

// Dataset is the content written by Run.
type Dataset struct {
	PersonalInfo    models.PersonalInfo
	Skills          []dto.CreateSkillRequest
	Education       []dto.CreateEducationRequest
	Projects        []dto.CreateProjectRequest
	Goals           []dto.CreateGoalRequest
	CurrentLearning []dto.CreateLearningItemRequest
}

func text(pt, en string) *models.BilingualText {
	t := models.Text(pt, en)
	return &t
}

// Default returns the initial portfolio content.
func Default() Dataset {
	return Dataset{
		PersonalInfo: models.PersonalInfo{
			Name:     "Pedro Gomes",
			Title:    models.Text("Desenvolvedor Fullstack Junior", "Junior Fullstack Developer"),
			Subtitle: models.Text("Estudante de Engenharia de Software", "Software Engineering Student"),
			Description: models.Text(
				"Cursando Bacharelado em Engenharia de Software (1º semestre) na Universidade Anhaguera, com formação técnica em suporte de TI. Focado em Java, Spring Boot e tecnologias modernas.",
				"Currently pursuing a Bachelor's degree in Software Engineering (1st semester) at Anhaguera University, with technical background in IT support. Focused on Java, Spring Boot and modern technologies.",
			),
			Location: "Brazil",
			Status:   models.Text("Disponível para estágio", "Available for internship"),
			Contact: models.ContactInfo{
				Email:    "pedroballario@gmail.com",
				LinkedIn: "https://www.linkedin.com/in/pedro-gomes-ba4825354",
				GitHub:   "https://github.com/gomesdev1",
			},
		},
		Skills: []dto.CreateSkillRequest{
			{
				Category:     text("Backend", "Backend"),
				Technologies: []string{"Java", "Spring Boot", "MongoDB", "APIs REST", "Orientação a Objetos"},
				Order:        1,
			},
			{
				Category:     text("Frontend", "Frontend"),
				Technologies: []string{"HTML", "CSS", "JavaScript", "React (aprendendo)"},
				Order:        2,
			},
			{
				Category:     text("Ferramentas", "Tools"),
				Technologies: []string{"Git", "Linux", "Suporte Técnico", "Redes de Computadores"},
				Order:        3,
			},
			{
				Category:     text("Soft Skills", "Soft Skills"),
				Technologies: []string{"Autodidata", "Dedicado", "Foco em Aprendizado", "Orientado a Detalhes"},
				Order:        4,
			},
		},
		Education: []dto.CreateEducationRequest{
			{
				Institution: "Universidade Anhaguera",
				Degree:      text("Bacharelado em Engenharia de Software", "Bachelor's in Software Engineering"),
				Period:      "2024 - Em andamento",
				Status:      text("1º Semestre", "1st Semester"),
				Order:       1,
			},
			{
				Institution: "Formação Técnica",
				Degree:      text("Suporte de TI", "IT Support"),
				Period:      "Concluído",
				Status:      text("Redes, Hardware, Software", "Networks, Hardware, Software"),
				Order:       2,
			},
		},
		Projects: []dto.CreateProjectRequest{
			{
				Title:        text("EM DESENVOLVIMENTO", "IN DEVELOPMENT"),
				Description:  text("Projetos serão adicionados conforme desenvolvimento", "Projects will be added as development progresses"),
				Technologies: []string{},
				Status:       models.ProjectStatusPlaceholder,
				Order:        1,
			},
		},
		Goals: []dto.CreateGoalRequest{
			{Goal: text("Conquistar primeira oportunidade de estágio", "Secure first internship opportunity"), Order: 1},
			{Goal: text("Evoluir como desenvolvedor de software", "Evolve as a software developer"), Order: 2},
			{Goal: text("Tornar-se engenheiro de software", "Become a software engineer"), Order: 3},
			{Goal: text("Dominar tecnologias fullstack", "Master fullstack technologies"), Order: 4},
		},
		CurrentLearning: []dto.CreateLearningItemRequest{
			{Item: text("Curso Java com Spring Boot", "Java course with Spring Boot"), Order: 1},
			{Item: text("Desenvolvimento de APIs", "API Development"), Order: 2},
			{Item: text("MongoDB e NoSQL", "MongoDB and NoSQL"), Order: 3},
			{Item: text("Frontend com React", "Frontend with React"), Order: 4},
			{Item: text("Boas práticas de desenvolvimento", "Development best practices"), Order: 5},
		},
	}
}
