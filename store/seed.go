package store

import "github.com/uniinone/uniinone-api/model"

// SeedUniversities returns the fixed initial university dataset, used when
// durable storage holds nothing usable. Each call returns a fresh slice so a
// store can mutate its copy freely.
func SeedUniversities() []model.University {
	return []model.University{
		{
			ID:           1,
			Name:         "Cairo University",
			ArabicName:   "جامعة القاهرة",
			City:         "Cairo",
			Type:         model.UniversityTypePublic,
			Founded:      1908,
			Students:     "155,000+",
			Ranking:      1,
			Image:        "https://img.youm7.com/ArticleImgs/2024/8/5/244087-%D9%82%D8%A8%D8%A9.jpg",
			Programs:     []string{"Medicine", "Engineering", "Law", "Business", "Arts"},
			TuitionRange: "EGP 1,500 - 15,000",
			Rating:       4.8,
			Description:  "Egypt's premier university, renowned for academic excellence and research innovation.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3454.336496155697!2d31.208526199999998!3d30.027202699999993!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x145846dbabc27ebd%3A0xa8c3715257b6f3cb!2sCairo%20University!5e0!3m2!1sen!2seg!4v1765086076244!5m2!1sen!2seg",
		},
		{
			ID:           2,
			Name:         "American University in Cairo",
			ArabicName:   "الجامعة الأمريكية بالقاهرة",
			City:         "Cairo",
			Type:         model.UniversityTypePrivate,
			Founded:      1919,
			Students:     "7,000+",
			Ranking:      2,
			Image:        "https://theigclub.com/wp-content/uploads/elementor/thumbs/138529499_10159073446255295_5222111569372919742_n-pt2koewkqz4gbfzb9qexbotsi9olkdlglqnu743z4w.jpg",
			Programs:     []string{"Business", "Engineering", "Computer Science", "Political Science", "Psychology"},
			TuitionRange: "USD 15,000 - 25,000",
			Rating:       4.7,
			Description:  "Leading liberal arts university offering American-style education in Egypt.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3454.6155427407025!2d31.500327075009352!3d30.019193819767562!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x1458225af8f916d1%3A0x75e8bf3141e205c7!2sThe%20American%20University%20in%20Cairo!5e0!3m2!1sen!2seg!4v1765086687548!5m2!1sen!2seg",
		},
		{
			ID:           3,
			Name:         "Alexandria University",
			ArabicName:   "جامعة الإسكندرية",
			City:         "Alexandria",
			Type:         model.UniversityTypePublic,
			Founded:      1942,
			Students:     "180,000+",
			Ranking:      3,
			Image:        "https://alexu.edu.eg/images/ahmedgaber/my_university.jpg",
			Programs:     []string{"Medicine", "Engineering", "Agriculture", "Pharmacy", "Science"},
			TuitionRange: "EGP 1,200 - 12,000",
			Rating:       4.6,
			Description:  "Historic university known for medical and engineering programs with Mediterranean campus.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3412.3664411989203!2d29.910495575056693!3d31.210575662383395!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x14f5c3ee42055555%3A0x7453e67e768b49a2!2sAlexandria%20University!5e0!3m2!1sen!2seg!4v1765086783821!5m2!1sen!2seg",
		},
		{
			ID:           4,
			Name:         "Ain Shams University",
			ArabicName:   "جامعة عين شمس",
			City:         "Cairo",
			Type:         model.UniversityTypePublic,
			Founded:      1950,
			Students:     "200,000+",
			Ranking:      4,
			Image:        "https://scenenow.com/Content/Admin/Uploads/Articles/ArticlesMainPhoto/42796/36a16404-69c2-4ebd-b4ad-80245e29027d.jpg",
			Programs:     []string{"Medicine", "Engineering", "Commerce", "Education", "Computer Science"},
			TuitionRange: "EGP 1,800 - 18,000",
			Rating:       4.5,
			Description:  "Comprehensive university with strong research focus and diverse academic programs.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3452.6120148033447!2d31.281971075011654!3d30.076653917044933!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x14581aa0476faf15%3A0x61a1e5a21354321a!2sAin%20Shams%20University!5e0!3m2!1sen!2seg!4v1765086846061!5m2!1sen!2seg",
		},
		{
			ID:           5,
			Name:         "German University in Cairo",
			ArabicName:   "الجامعة الألمانية بالقاهرة",
			City:         "Cairo",
			Type:         model.UniversityTypePrivate,
			Founded:      2003,
			Students:     "12,000+",
			Ranking:      5,
			Image:        "https://www.guc.edu.eg//img/content/about_guc/48.jpg",
			Programs:     []string{"Engineering", "Management", "Information Technology", "Applied Sciences"},
			TuitionRange: "EUR 4,000 - 8,000",
			Rating:       4.6,
			Description:  "German-Egyptian partnership offering European-standard education and research.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3455.742371528698!2d31.438770875008256!3d29.986833121299163!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x14583cb2bfafbe73%3A0x6e7220116094726d!2sGerman%20University%20in%20Cairo%20(GUC)!5e0!3m2!1sen!2seg!4v1765086892556!5m2!1sen!2seg",
		},
		{
			ID:           6,
			Name:         "Mansoura University",
			ArabicName:   "جامعة المنصورة",
			City:         "Mansoura",
			Type:         model.UniversityTypePublic,
			Founded:      1972,
			Students:     "140,000+",
			Ranking:      6,
			Image:        "https://oktamam.com/wp-content/uploads/2024/03/mansoura-university-campus.jpg",
			Programs:     []string{"Medicine", "Engineering", "Science", "Agriculture", "Veterinary Medicine"},
			TuitionRange: "EGP 1,400 - 14,000",
			Rating:       4.4,
			Description:  "Leading regional university with excellent medical and engineering faculties.",
			Location:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3418.3305994516636!2d31.35111177505004!3d31.044894870480366!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x14f79dd4295c80e9%3A0x29c566a018cecb77!2sMansoura%20University!5e0!3m2!1sen!2seg!4v1765086933292!5m2!1sen!2seg",
		},
	}
}

// SeedFaculties returns the fixed faculty reference dataset.
func SeedFaculties() []model.Faculty {
	return []model.Faculty{
		{
			ID:                       1,
			Name:                     "Faculty of Medicine",
			ArabicName:               "كلية الطب",
			Category:                 "Health Sciences",
			Description:              "The Faculty of Medicine offers comprehensive medical education leading to MD degree. Students learn clinical skills, medical sciences, and patient care through theoretical courses and hands-on clinical rotations in teaching hospitals.",
			Departments:              []string{"Human Medicine", "Surgery", "Pediatrics", "Internal Medicine", "Obstetrics & Gynecology", "Radiology", "Anesthesiology", "Pathology"},
			Duration:                 "6-7 years (including internship)",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Mansoura University", "Assiut University"},
			EntryRequirements:        "Minimum 95% in Thanawiya Amma (Science)",
			StudentsCount:            "2,500-3,500 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Medical Syndicate"},
			CareerProspects:          []string{"General Practitioner", "Specialist Physician", "Surgeon", "Medical Researcher", "Hospital Administrator"},
			Icon:                     "stethoscope",
			PopularityRank:           1,
			AdmissionCompetitiveness: model.CompetitivenessVeryHigh,
		},
		{
			ID:                       2,
			Name:                     "Faculty of Engineering",
			ArabicName:               "كلية الهندسة",
			Category:                 "Engineering & Technology",
			Description:              "Faculty of Engineering provides specialized education in various engineering disciplines. The program combines theoretical knowledge with practical applications, preparing graduates for careers in industry, research, and technology sectors.",
			Departments:              []string{"Civil Engineering", "Mechanical Engineering", "Electrical Engineering", "Computer Engineering", "Chemical Engineering", "Architecture Engineering", "Mechatronics", "Petroleum Engineering"},
			Duration:                 "5 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "German University in Cairo", "Helwan University"},
			EntryRequirements:        "Minimum 85-90% in Thanawiya Amma (Math)",
			StudentsCount:            "3,000-5,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Engineering Syndicate", "ABET (for some programs)"},
			CareerProspects:          []string{"Design Engineer", "Project Manager", "Engineering Consultant", "Research Engineer", "Technical Director"},
			Icon:                     "cpu",
			PopularityRank:           2,
			AdmissionCompetitiveness: model.CompetitivenessVeryHigh,
		},
		{
			ID:                       3,
			Name:                     "Faculty of Pharmacy",
			ArabicName:               "كلية الصيدلة",
			Category:                 "Health Sciences",
			Description:              "Faculty of Pharmacy offers comprehensive pharmaceutical education covering drug sciences, pharmaceutical chemistry, pharmacology, and clinical pharmacy. Students gain knowledge in drug development, manufacturing, and patient-centered pharmaceutical care.",
			Departments:              []string{"Pharmaceutical Chemistry", "Pharmacology", "Clinical Pharmacy", "Pharmaceutics", "Pharmacognosy", "Pharmaceutical Microbiology", "Biochemistry"},
			Duration:                 "5 years + 1 year internship",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Mansoura University", "British University in Egypt"},
			EntryRequirements:        "Minimum 90-92% in Thanawiya Amma (Science)",
			StudentsCount:            "1,500-2,500 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Pharmacists Syndicate"},
			CareerProspects:          []string{"Clinical Pharmacist", "Industrial Pharmacist", "Drug Researcher", "Pharmacy Manager", "Quality Control Specialist"},
			Icon:                     "flask-conical",
			PopularityRank:           3,
			AdmissionCompetitiveness: model.CompetitivenessVeryHigh,
		},
		{
			ID:                       4,
			Name:                     "Faculty of Computer and Information Science",
			ArabicName:               "كلية الحاسبات والمعلومات",
			Category:                 "Engineering & Technology",
			Description:              "This faculty focuses on computer science, information systems, artificial intelligence, and software engineering. Students learn programming, algorithms, database systems, cybersecurity, and emerging technologies.",
			Departments:              []string{"Computer Science", "Information Systems", "Information Technology", "Software Engineering", "Artificial Intelligence", "Data Science", "Cybersecurity"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "Helwan University", "Ain Shams University", "Assiut University", "Mansoura University"},
			EntryRequirements:        "Minimum 85-90% in Thanawiya Amma (Math)",
			StudentsCount:            "1,000-2,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Engineering Syndicate"},
			CareerProspects:          []string{"Software Developer", "Data Scientist", "AI Engineer", "Systems Analyst", "IT Consultant", "Cybersecurity Specialist"},
			Icon:                     "code",
			PopularityRank:           4,
			AdmissionCompetitiveness: model.CompetitivenessHigh,
		},
		{
			ID:                       5,
			Name:                     "Faculty of Business and Economics",
			ArabicName:               "كلية التجارة",
			Category:                 "Business & Management",
			Description:              "Faculty of Business provides education in business administration, accounting, economics, finance, and management. Students develop skills in strategic thinking, financial analysis, marketing, and entrepreneurship.",
			Departments:              []string{"Accounting", "Business Administration", "Economics", "Finance", "Marketing", "Management Information Systems", "Insurance & Risk Management"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "American University in Cairo", "Ain Shams University", "Alexandria University", "German University in Cairo"},
			EntryRequirements:        "Minimum 70-75% in Thanawiya Amma (Math or Literature)",
			StudentsCount:            "4,000-8,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "AACSB (for select programs)"},
			CareerProspects:          []string{"Financial Analyst", "Management Consultant", "Marketing Manager", "Entrepreneur", "Investment Banker", "Business Development Manager"},
			Icon:                     "briefcase",
			PopularityRank:           5,
			AdmissionCompetitiveness: model.CompetitivenessMedium,
		},
		{
			ID:                       6,
			Name:                     "Faculty of Law",
			ArabicName:               "كلية الحقوق",
			Category:                 "Law & Legal Studies",
			Description:              "Faculty of Law offers comprehensive legal education covering civil law, criminal law, international law, and Islamic law. The program prepares graduates for legal practice, judiciary, and legal consultancy.",
			Departments:              []string{"Civil Law", "Criminal Law", "Public Law", "International Law", "Commercial Law", "Islamic Sharia", "Legal History"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Assiut University", "Mansoura University"},
			EntryRequirements:        "Minimum 75-80% in Thanawiya Amma (Literature)",
			StudentsCount:            "3,000-5,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Lawyers Syndicate"},
			CareerProspects:          []string{"Lawyer", "Judge", "Legal Consultant", "Corporate Counsel", "Legal Researcher", "Public Prosecutor"},
			Icon:                     "scale",
			PopularityRank:           6,
			AdmissionCompetitiveness: model.CompetitivenessMedium,
		},
		{
			ID:                       7,
			Name:                     "Faculty of Science",
			ArabicName:               "كلية العلوم",
			Category:                 "Sciences",
			Description:              "Faculty of Science provides education in pure and applied sciences including mathematics, physics, chemistry, biology, and geology. Students engage in theoretical studies and laboratory research.",
			Departments:              []string{"Mathematics", "Physics", "Chemistry", "Biology", "Geology", "Biotechnology", "Biophysics", "Zoology", "Botany"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Suez Canal University", "Tanta University"},
			EntryRequirements:        "Minimum 80-85% in Thanawiya Amma (Science)",
			StudentsCount:            "2,000-3,500 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Scientific Syndicate"},
			CareerProspects:          []string{"Research Scientist", "Lab Analyst", "Quality Control Specialist", "Academic Researcher", "Environmental Consultant"},
			Icon:                     "flask-conical",
			PopularityRank:           7,
			AdmissionCompetitiveness: model.CompetitivenessHigh,
		},
		{
			ID:                       8,
			Name:                     "Faculty of Architecture",
			ArabicName:               "كلية الهندسة المعمارية",
			Category:                 "Engineering & Technology",
			Description:              "Faculty of Architecture focuses on architectural design, urban planning, and sustainable development. Students learn to design buildings, landscapes, and urban spaces while considering aesthetic, functional, and environmental factors.",
			Departments:              []string{"Architectural Design", "Urban Planning", "Landscape Architecture", "Interior Design", "Building Technology", "Sustainable Architecture"},
			Duration:                 "5 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Helwan University", "MSA University"},
			EntryRequirements:        "Minimum 85-88% in Thanawiya Amma (Math) + Drawing Test",
			StudentsCount:            "500-1,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Engineering Syndicate"},
			CareerProspects:          []string{"Architect", "Urban Planner", "Interior Designer", "Landscape Architect", "Project Manager", "Sustainable Design Consultant"},
			Icon:                     "building-2",
			PopularityRank:           8,
			AdmissionCompetitiveness: model.CompetitivenessHigh,
		},
		{
			ID:                       9,
			Name:                     "Faculty of Arts and Humanities",
			ArabicName:               "كلية الآداب",
			Category:                 "Arts & Humanities",
			Description:              "Faculty of Arts offers programs in languages, literature, history, philosophy, geography, and social sciences. Students develop critical thinking, research skills, and cultural understanding.",
			Departments:              []string{"English Language", "Arabic Language", "History", "Geography", "Philosophy", "Psychology", "Sociology", "Anthropology", "French Language"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Helwan University", "Zagazig University"},
			EntryRequirements:        "Minimum 65-70% in Thanawiya Amma (Literature)",
			StudentsCount:            "5,000-10,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE"},
			CareerProspects:          []string{"Teacher/Educator", "Translator", "Content Writer", "Researcher", "Cultural Consultant", "Social Worker"},
			Icon:                     "book-open",
			PopularityRank:           9,
			AdmissionCompetitiveness: model.CompetitivenessModerate,
		},
		{
			ID:                       10,
			Name:                     "Faculty of Mass Communication",
			ArabicName:               "كلية الإعلام",
			Category:                 "Media & Communication",
			Description:              "Faculty of Mass Communication prepares students for careers in journalism, broadcasting, public relations, and digital media. The program combines theoretical knowledge with practical media production skills.",
			Departments:              []string{"Journalism", "Radio & Television", "Public Relations", "Advertising", "Digital Media", "Film Production", "Media Studies"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "American University in Cairo", "Ain Shams University", "South Valley University", "MSA University"},
			EntryRequirements:        "Minimum 75-80% in Thanawiya Amma (Literature)",
			StudentsCount:            "1,000-2,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Journalists Syndicate"},
			CareerProspects:          []string{"Journalist", "TV Producer", "PR Specialist", "Social Media Manager", "Content Creator", "Media Consultant"},
			Icon:                     "megaphone",
			PopularityRank:           10,
			AdmissionCompetitiveness: model.CompetitivenessMedium,
		},
		{
			ID:                       11,
			Name:                     "Faculty of Fine Arts",
			ArabicName:               "كلية الفنون الجميلة",
			Category:                 "Arts & Humanities",
			Description:              "Faculty of Fine Arts provides education in visual arts, including painting, sculpture, graphic design, and art history. Students develop artistic skills and creative expression through studio practice and theoretical studies.",
			Departments:              []string{"Painting", "Sculpture", "Graphic Design", "Photography", "Art History", "Ceramics", "Textile Design", "Interior Design"},
			Duration:                 "4-5 years",
			Universities:             []string{"Helwan University", "Alexandria University", "Minia University", "Luxor University", "MSA University"},
			EntryRequirements:        "Minimum 65-70% in Thanawiya Amma + Art Portfolio/Test",
			StudentsCount:            "500-1,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Fine Arts Syndicate"},
			CareerProspects:          []string{"Visual Artist", "Graphic Designer", "Art Director", "Gallery Curator", "Art Teacher", "Illustrator"},
			Icon:                     "palette",
			PopularityRank:           11,
			AdmissionCompetitiveness: model.CompetitivenessMedium,
		},
		{
			ID:                       12,
			Name:                     "Faculty of Agriculture",
			ArabicName:               "كلية الزراعة",
			Category:                 "Agricultural Sciences",
			Description:              "Faculty of Agriculture focuses on agricultural sciences, food production, animal husbandry, and sustainable farming. Students learn modern agricultural techniques, crop management, and food security strategies.",
			Departments:              []string{"Agronomy", "Animal Production", "Agricultural Economics", "Horticulture", "Soil Science", "Food Technology", "Agricultural Engineering", "Plant Pathology"},
			Duration:                 "4 years",
			Universities:             []string{"Cairo University", "Alexandria University", "Ain Shams University", "Mansoura University", "Assiut University"},
			EntryRequirements:        "Minimum 70-75% in Thanawiya Amma (Science)",
			StudentsCount:            "2,000-3,000 per university",
			Accreditation:            []string{"Supreme Council of Universities", "NAQAAE", "Agricultural Syndicate"},
			CareerProspects:          []string{"Agricultural Engineer", "Farm Manager", "Food Scientist", "Agricultural Consultant", "Crop Specialist", "Research Scientist"},
			Icon:                     "wheat",
			PopularityRank:           12,
			AdmissionCompetitiveness: model.CompetitivenessModerate,
		},
	}
}
