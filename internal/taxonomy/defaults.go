package taxonomy

// Category names for the built-in taxonomy, in assignment-priority order.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryWebFrameworks        = "web_frameworks"
	CategoryMLAI                 = "ml_ai"
	CategoryDatabases            = "databases"
	CategoryCloudPlatforms       = "cloud_platforms"
	CategoryDevOpsTools          = "devops_tools"
	CategoryAWSServices          = "aws_services"
	CategoryDataTools            = "data_tools"
	CategoryMobile               = "mobile"
	CategoryTesting              = "testing"
	CategoryAPIProtocols         = "api_protocols"
	CategoryOtherTech            = "other_tech"
	CategorySoftSkills           = "soft_skills"
	CategoryMethodologies        = "methodologies"
)

var defaultCategoryNames = []string{
	CategoryProgrammingLanguages,
	CategoryWebFrameworks,
	CategoryMLAI,
	CategoryDatabases,
	CategoryCloudPlatforms,
	CategoryDevOpsTools,
	CategoryAWSServices,
	CategoryDataTools,
	CategoryMobile,
	CategoryTesting,
	CategoryAPIProtocols,
	CategoryOtherTech,
	CategorySoftSkills,
	CategoryMethodologies,
}

var defaultCategories = map[string][]string{
	CategoryProgrammingLanguages: {
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
		"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
		"HTML", "CSS", "SQL", "Shell", "Bash", "PowerShell", "Dart", "Lua",
		"Objective-C", "Groovy", "Haskell", "Elixir", "Clojure", "F#",
	},
	CategoryWebFrameworks: {
		"Django", "Flask", "FastAPI", "React", "Angular", "Vue", "Vue.js", "Node.js",
		"Express", "Express.js", "Spring", "Spring Boot", "ASP.NET", "Laravel",
		"Rails", "Ruby on Rails", "Next.js", "Nuxt.js", "Gatsby", "Svelte",
		"Bootstrap", "Tailwind", "Tailwind CSS", "jQuery", "Backbone.js", "Ember.js",
	},
	CategoryMLAI: {
		"Machine Learning", "Deep Learning", "Neural Networks", "NLP", "CNN", "RNN",
		"Natural Language Processing", "Computer Vision", "Reinforcement Learning",
		"TensorFlow", "PyTorch", "Keras", "scikit-learn", "sklearn", "XGBoost",
		"LightGBM", "CatBoost", "NLTK", "spaCy", "Transformers", "BERT", "GPT",
		"YOLO", "OpenCV", "Hugging Face", "MLflow", "Weights & Biases", "SageMaker",
		"AutoML", "Transfer Learning", "GANs", "LSTM", "GRU",
	},
	CategoryDatabases: {
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Cassandra", "Oracle",
		"SQL Server", "SQLite", "DynamoDB", "Elasticsearch", "Neo4j",
		"Firebase", "MariaDB", "CouchDB", "InfluxDB", "Snowflake", "BigQuery",
		"Redshift", "DocumentDB", "Cosmos DB", "Memcached", "Couchbase",
	},
	CategoryCloudPlatforms: {
		"AWS", "Azure", "GCP", "Google Cloud", "Google Cloud Platform",
		"Heroku", "DigitalOcean", "Linode", "IBM Cloud", "Oracle Cloud",
		"Alibaba Cloud", "Cloudflare",
	},
	CategoryDevOpsTools: {
		"Docker", "Kubernetes", "Jenkins", "CI/CD", "Terraform", "Ansible",
		"Git", "GitHub", "GitLab", "BitBucket", "Travis CI", "CircleCI",
		"GitHub Actions", "ArgoCD", "Helm", "Vagrant", "Puppet", "Chef",
		"Prometheus", "Grafana", "ELK Stack", "Nagios", "Datadog", "New Relic",
	},
	CategoryAWSServices: {
		"EC2", "S3", "Lambda", "ECS", "EKS", "RDS", "DynamoDB", "CloudFormation",
		"CloudWatch", "Route 53", "API Gateway", "SNS", "SQS", "Kinesis",
		"Elastic Beanstalk", "CloudFront", "IAM", "VPC", "Athena", "Glue",
	},
	CategoryDataTools: {
		"pandas", "NumPy", "Spark", "Apache Spark", "Hadoop", "Kafka",
		"Apache Kafka", "Airflow", "Apache Airflow", "dbt", "Tableau",
		"Power BI", "Looker", "Matplotlib", "Seaborn", "Plotly", "D3.js",
		"Excel", "Jupyter", "JupyterLab", "ETL", "Apache Flink", "Databricks",
	},
	CategoryMobile: {
		"React Native", "Flutter", "Ionic", "Android", "iOS", "Xamarin",
		"Swift UI", "Jetpack Compose", "Cordova", "PhoneGap",
	},
	CategoryTesting: {
		"Jest", "Mocha", "Pytest", "Selenium", "Cypress", "JUnit", "TestNG",
		"Unit Testing", "Integration Testing", "E2E Testing", "TDD", "BDD",
		"Postman", "JMeter", "LoadRunner", "Cucumber", "Jasmine", "Karma",
	},
	CategoryAPIProtocols: {
		"REST", "REST API", "RESTful API", "GraphQL", "gRPC", "WebSockets",
		"SOAP", "OAuth", "JWT", "OpenAPI", "Swagger", "Microservices",
	},
	CategoryOtherTech: {
		"Linux", "Unix", "Nginx", "Apache", "RabbitMQ", "WebRTC",
		"Blockchain", "Solidity", "Web3", "WebAssembly", "Socket.io",
	},
	CategorySoftSkills: {
		"Leadership", "Communication", "Teamwork", "Team Collaboration", "Problem Solving",
		"Critical Thinking", "Time Management", "Adaptability", "Creativity",
		"Collaboration", "Project Management", "Agile", "Scrum", "Analytical",
		"Detail-Oriented", "Self-Motivated", "Mentoring", "Presentation Skills",
		"Public Speaking", "Conflict Resolution", "Decision Making", "Strategic Thinking",
		"Customer Service", "Stakeholder Management", "Cross-functional Collaboration",
	},
	CategoryMethodologies: {
		"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "CI/CD",
		"Test-Driven Development", "TDD", "Behavior-Driven Development", "BDD",
		"Domain-Driven Design", "DDD", "Microservices Architecture",
		"Event-Driven Architecture", "SOLID Principles", "Design Patterns",
		"RESTful Design", "API Design", "Database Design", "System Design",
	},
}

var defaultSynonyms = map[string][]string{
	"Machine Learning":            {"ML", "Machine-Learning"},
	"Deep Learning":               {"DL", "Deep-Learning"},
	"Natural Language Processing": {"NLP"},
	"Continuous Integration":      {"CI", "CI/CD"},
	"Amazon Web Services":         {"AWS"},
	"Google Cloud Platform":       {"GCP", "Google Cloud"},
	"Microsoft Azure":             {"Azure"},
	"Artificial Intelligence":     {"AI"},
	"PostgreSQL":                  {"Postgres"},
	"MongoDB":                     {"Mongo"},
	"JavaScript":                  {"JS"},
	"TypeScript":                  {"TS"},
	"Kubernetes":                  {"K8s"},
	"React.js":                    {"React", "ReactJS"},
	"Vue.js":                      {"Vue", "VueJS"},
	"Node.js":                     {"Node", "NodeJS"},
	"Express.js":                  {"Express", "ExpressJS"},
	"scikit-learn":                {"sklearn"},
}

var defaultEducationKeywords = map[string][]string{
	LevelPhD:        {"PhD", "Ph.D", "Ph.D.", "Doctorate", "Doctoral", "Doctor of Philosophy"},
	LevelMasters:    {"Master", "Masters", "Master's", "M.S.", "M.Sc", "M.Sc.", "MBA", "M.A.", "MSc", "MS"},
	LevelBachelors:  {"Bachelor", "Bachelors", "Bachelor's", "B.S.", "B.Sc", "B.Sc.", "B.A.", "B.Tech", "B.E.", "BSc", "BS"},
	LevelAssociate:  {"Associate", "A.S.", "A.A.", "AS", "AA"},
	LevelDiploma:    {"Diploma", "Certificate", "Advanced Diploma"},
	LevelHighSchool: {"High School", "Secondary School", "Matric"},
}

var defaultSeniorityKeywords = map[string][]string{
	SenioritySenior: {"Senior", "Lead", "Principal", "Staff", "Architect", "Chief", "Director", "VP", "Head of"},
	SeniorityMid:    {"Mid-level", "Intermediate", "Mid", "Experienced"},
	SeniorityJunior: {"Junior", "Entry-level", "Graduate", "Associate", "Assistant"},
	SeniorityIntern: {"Intern", "Internship", "Trainee", "Apprentice"},
}

var defaultCertifications = []string{
	"AWS Certified Solutions Architect",
	"AWS Certified Developer",
	"AWS Certified Machine Learning",
	"Azure Certified",
	"Google Cloud Certified",
	"PMP", "Project Management Professional",
	"Certified Scrum Master", "CSM",
	"CISSP",
	"CompTIA",
	"Oracle Certified",
	"Microsoft Certified",
	"Kubernetes Certified",
	"Docker Certified",
	"TensorFlow Developer Certificate",
	"Data Science Certificate",
	"Python Certificate",
}

var defaultTaxonomy = New(
	defaultCategoryNames,
	defaultCategories,
	defaultSynonyms,
	defaultEducationKeywords,
	defaultSeniorityKeywords,
	defaultCertifications,
)

// Default returns the built-in taxonomy. The same instance is shared
// process-wide; it is read-only after package initialization.
func Default() *Taxonomy {
	return defaultTaxonomy
}
